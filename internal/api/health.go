package api

import (
	"net/http"

	"animeai-app/backend/pkg/health"

	"github.com/gin-gonic/gin"
)

// HealthHandler serves liveness endpoints plus a component-level detail
// view backed by the periodic health checker.
type HealthHandler struct {
	checker *health.Checker
}

// NewHealthHandler creates the handler. checker may be nil, in which case
// only the plain liveness endpoints work.
func NewHealthHandler(checker *health.Checker) *HealthHandler {
	return &HealthHandler{checker: checker}
}

// Health answers GET /api/health and GET /api/status.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"message": "AnimeAI API is running",
	})
}

// Details answers GET /api/health/details with per-component status.
func (h *HealthHandler) Details(c *gin.Context) {
	if h.checker == nil {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
		return
	}

	status := http.StatusOK
	if !h.checker.Healthy() {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{
		"status":     h.checker.Healthy(),
		"components": h.checker.GetStatus(),
	})
}
