package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/pretamane/bing-crawling-api/internal/registry"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	registry *registry.Registry
	redis    *redis.Client
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(reg *registry.Registry, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{
		registry: reg,
		redis:    redisClient,
	}
}

// HealthStatus represents the health check response
type HealthStatus struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}

// Health handles GET /health. Engine slots are reported without forcing
// construction: an uninitialized slot is normal under lazy loading and does
// not make the service unhealthy; an unavailable slot does.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	components := make(map[string]string)
	healthy := true

	for _, capability := range []registry.Capability{
		registry.CapabilityExtractor,
		registry.CapabilityClassifier,
	} {
		state, cause := h.registry.Status(capability)
		if state == registry.StateUnavailable {
			healthy = false
			components[string(capability)] = "unavailable: " + cause.Error()
			continue
		}
		components[string(capability)] = string(state)
	}

	if h.redis != nil {
		if err := h.redis.Ping(ctx).Err(); err != nil {
			components["redis"] = "error: " + err.Error()
			healthy = false
		} else {
			components["redis"] = "ok"
		}
	} else {
		components["redis"] = "not configured"
	}

	status := "healthy"
	httpStatus := http.StatusOK
	if !healthy {
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, HealthStatus{
		Status:     status,
		Components: components,
	})
}

// Ready handles GET /ready. Engines load lazily on first use, so the service
// is ready as soon as it accepts requests.
func (h *HealthHandler) Ready(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
