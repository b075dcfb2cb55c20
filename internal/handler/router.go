package handler

import (
	"fmt"

	"github.com/cleberrangel/reader-calc/internal/metrics"
	"github.com/cleberrangel/reader-calc/internal/middleware"
	"github.com/cleberrangel/reader-calc/internal/service"
	"github.com/cleberrangel/reader-calc/internal/web"
	"github.com/gin-gonic/gin"
)

// RouterConfig holds the dependencies of the HTTP router
type RouterConfig struct {
	Calculator  *service.CalculatorService
	Metrics     *metrics.Metrics
	RateLimiter *middleware.RateLimiter
	Version     string
}

// NewRouter wires middleware, the calculator page, the JSON API and the
// health endpoints
func NewRouter(cfg RouterConfig) (*gin.Engine, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("carregar templates: %w", err)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(gin.Recovery())
	r.Use(middleware.MetricsMiddleware(cfg.Metrics))
	r.SetHTMLTemplate(tmpl)

	calculatorHandler := NewCalculatorHandler(cfg.Calculator)
	estimateHandler := NewEstimateHandler(cfg.Calculator)
	healthHandler := NewHealthHandler(cfg.Metrics, cfg.Version)

	r.GET("/health/live", healthHandler.LivenessCheck)
	r.GET("/health/ready", healthHandler.ReadinessCheck)
	r.GET("/metrics", healthHandler.GetMetrics)

	r.GET("/", calculatorHandler.Index)

	limited := r.Group("/")
	if cfg.RateLimiter != nil {
		limited.Use(cfg.RateLimiter.Middleware())
	}
	{
		limited.POST("/calculate", calculatorHandler.Calculate)
	}

	api := r.Group("/api/v1")
	if cfg.RateLimiter != nil {
		api.Use(cfg.RateLimiter.Middleware())
	}
	{
		api.POST("/estimate", estimateHandler.Estimate)
		api.GET("/levels", estimateHandler.Levels)
	}

	return r, nil
}
