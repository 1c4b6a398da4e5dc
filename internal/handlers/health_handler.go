package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// HealthHandler expone los dos únicos endpoints que atrapan errores del
// almacén: el resto del código los deja propagar
type HealthHandler struct {
	client *mongo.Client
}

func NewHealthHandler(client *mongo.Client) *HealthHandler {
	return &HealthHandler{client: client}
}

// GET /v1/health/live
func (h *HealthHandler) Live(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// GET /v1/health/mongo
func (h *HealthHandler) Mongo(c *gin.Context) {
	if err := h.client.Ping(c.Request.Context(), readpref.Primary()); err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.String(http.StatusOK, "MongoDB connection successful!")
}
