package handler

import (
	"net/http"
	"time"

	"github.com/cleberrangel/reader-calc/internal/estimator"
	"github.com/cleberrangel/reader-calc/internal/metrics"
	"github.com/gin-gonic/gin"
)

// defaultEstimate is the estimate of the form defaults (10 pages, b2, b2, normal)
const defaultEstimate = 75

// HealthHandler handles health check and metrics endpoints
type HealthHandler struct {
	metrics   *metrics.Metrics
	version   string
	startTime time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(m *metrics.Metrics, version string) *HealthHandler {
	if m == nil {
		m = metrics.Get()
	}
	return &HealthHandler{
		metrics:   m,
		version:   version,
		startTime: time.Now(),
	}
}

// LivenessCheck returns basic liveness status
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health/live [get]
func (h *HealthHandler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// ReadinessCheck returns readiness status including an estimator self-check
// @Summary Readiness check
// @Tags health
// @Produce json
// @Success 200 {object} metrics.HealthCheck
// @Failure 503 {object} metrics.HealthCheck
// @Router /health/ready [get]
func (h *HealthHandler) ReadinessCheck(c *gin.Context) {
	components := map[string]metrics.HealthStatus{
		"estimator": metrics.CheckEstimatorHealth(estimator.DefaultRequest().Estimate, defaultEstimate),
		"memory":    metrics.CheckMemoryHealth(512),
	}

	overallStatus := metrics.DetermineOverallStatus(components)

	healthCheck := metrics.HealthCheck{
		Status:     overallStatus,
		Version:    h.version,
		Uptime:     time.Since(h.startTime).String(),
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Components: components,
	}

	statusCode := http.StatusOK
	if overallStatus == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, healthCheck)
}

// GetMetrics returns application metrics
// @Summary Get application metrics
// @Tags metrics
// @Produce json
// @Success 200 {object} metrics.MetricsSnapshot
// @Router /metrics [get]
func (h *HealthHandler) GetMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, h.metrics.Snapshot())
}
