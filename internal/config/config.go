package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI   string
	MongoDB    string
	Port       string
	SessionTTL time.Duration
	CacheTTL   time.Duration
}

func LoadConfig() *Config {
	// Solo cargar .env en desarrollo local
	// En producción esto se ignora automáticamente
	if _, err := os.Stat(".env"); err == nil {
		err := godotenv.Load()
		if err != nil {
			log.Println("⚠️ Error loading .env file:", err)
		} else {
			log.Println("✅ .env file loaded successfully")
		}
	} else {
		log.Println("🌐 Using system environment variables")
	}

	return &Config{
		MongoURI:   getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:    getEnv("MONGO_DB", "storefront"),
		Port:       getEnv("PORT", "8080"),
		SessionTTL: getEnvMinutes("SESSION_TTL_MINUTES", 60),
		CacheTTL:   getEnvMinutes("CACHE_TTL_MINUTES", 5),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvMinutes(key string, fallback int) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return time.Duration(n) * time.Minute
		}
		log.Println("⚠️ Invalid value for", key, "- using default")
	}
	return time.Duration(fallback) * time.Minute
}
