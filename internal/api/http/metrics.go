package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/StyleMate-25-26J/stylemate-backend/internal/suggestion"
)

type MetricsHandler struct{}

func NewMetricsHandler() *MetricsHandler {
	return &MetricsHandler{}
}

// Snapshot returns the suggestion-serving counters.
func (h *MetricsHandler) Snapshot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "metrics": suggestion.GetMetrics().Snapshot()})
}

func (h *MetricsHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/metrics", h.Snapshot)
}
