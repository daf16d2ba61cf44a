package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type HealthHandler struct {
	mongoClient *mongo.Client
}

func NewHealthHandler(mongoClient *mongo.Client) *HealthHandler {
	return &HealthHandler{
		mongoClient: mongoClient,
	}
}

func (h *HealthHandler) HandleHealth(c *gin.Context) {
	mongoStatus := "connected"
	if err := h.mongoClient.Ping(c.Request.Context(), nil); err != nil {
		mongoStatus = "disconnected"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"mongodb":   mongoStatus,
	})
}
