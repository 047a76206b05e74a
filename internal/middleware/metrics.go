package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sma-adp-api/internal/service"
)

// Metrics records request duration and status for every route through
// metricsSvc. A nil service (metrics disabled) makes this a no-op pass-through.
func Metrics(metricsSvc *service.MetricsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metricsSvc == nil {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		metricsSvc.ObserveHTTPRequest(c.Request.Method, routeTemplate(c), c.Writer.Status(), time.Since(start))
	}
}

// routeTemplate prefers gin's matched route pattern (e.g. "/users/:id") over
// the raw path so metrics aggregate across path params instead of per-id.
func routeTemplate(c *gin.Context) string {
	if path := c.FullPath(); path != "" {
		return path
	}
	return c.Request.URL.Path
}
