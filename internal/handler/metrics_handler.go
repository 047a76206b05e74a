package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sma-adp-api/internal/service"
)

// MetricsHandler exposes operational endpoints (Prometheus scrape target,
// liveness/readiness probe) alongside the domain API.
type MetricsHandler struct {
	metrics *service.MetricsService
}

// NewMetricsHandler wires a MetricsHandler.
func NewMetricsHandler(metrics *service.MetricsService) *MetricsHandler {
	return &MetricsHandler{metrics: metrics}
}

// Prometheus serves the /metrics scrape endpoint, or 503 when metrics
// collection is disabled for this deployment.
func (h *MetricsHandler) Prometheus(c *gin.Context) {
	if h.metrics == nil {
		c.Status(http.StatusServiceUnavailable)
		return
	}
	h.metrics.Handler().ServeHTTP(c.Writer, c.Request)
}

// Health answers liveness/readiness probes with a static OK payload.
func (h *MetricsHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
