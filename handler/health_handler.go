package handler

import (
	"context"
	"net/http"
	"time"

	"main/services"
	"main/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type HealthHandler struct {
	mongoClient *mongo.Client
	statsCache  *services.StatsCache // nil when caching is disabled
	startedAt   time.Time
}

func NewHealthHandler(client *mongo.Client, cache *services.StatsCache) *HealthHandler {
	return &HealthHandler{
		mongoClient: client,
		statsCache:  cache,
		startedAt:   time.Now(),
	}
}

func (h *HealthHandler) GetHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status := http.StatusOK
	mongoStatus := "up"
	if err := h.mongoClient.Ping(ctx, readpref.Primary()); err != nil {
		mongoStatus = "down"
		status = http.StatusServiceUnavailable
	}

	cacheStatus := "disabled"
	if h.statsCache != nil {
		cacheStatus = "up"
		if err := h.statsCache.Ping(ctx); err != nil {
			cacheStatus = "down"
		}
	}

	c.JSON(status, gin.H{
		"status":         mongoStatus,
		"cache":          cacheStatus,
		"uptime_seconds": int(time.Since(h.startedAt).Seconds()),
		"system":         utils.GetSystemMetrics(),
	})
}
