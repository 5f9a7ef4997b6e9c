package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// HealthHandler reports reachability of the server's dependencies.
type HealthHandler struct {
	State *redis.Client
	Cache *redis.Client
}

func NewHealthHandler(state, cache *redis.Client) *HealthHandler {
	return &HealthHandler{State: state, Cache: cache}
}

// Health handles GET /health.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	stateOK := h.State.Ping(ctx).Err() == nil
	cacheOK := h.Cache.Ping(ctx).Err() == nil

	status := http.StatusOK
	overall := "ok"
	if !stateOK || !cacheOK {
		status = http.StatusServiceUnavailable
		overall = "degraded"
	}

	c.JSON(status, gin.H{
		"status":    overall,
		"redis":     gin.H{"state": stateOK, "cache": cacheOK},
		"checkedAt": time.Now().UTC(),
	})
}
