package main

import (
	"log"

	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/internal/kv"
	"storefront/internal/routes"
	"storefront/internal/session"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadConfig()
	client := database.Connect(cfg.MongoURI)
	db := client.Database(cfg.MongoDB)

	sessions := session.NewStore(kv.New(cfg.SessionTTL), cfg.SessionTTL)
	cache := kv.New(cfg.CacheTTL)

	router := gin.Default()
	routes.RegisterRoutes(router, client, db, sessions, cache)

	log.Println("🚀 Server running on port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("❌ Server stopped:", err)
	}
}
