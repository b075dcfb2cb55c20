package middleware

import (
	"time"

	"github.com/cleberrangel/reader-calc/internal/metrics"
	"github.com/gin-gonic/gin"
)

// MetricsMiddleware tracks request metrics
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	if m == nil {
		m = metrics.Get()
	}

	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start).Milliseconds()
		statusCode := c.Writer.Status()
		m.IncrementRequests(statusCode < 400, latency)

		// Track endpoint-specific metrics
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		m.TrackEndpoint(path, c.Request.Method, statusCode, latency)
	}
}
