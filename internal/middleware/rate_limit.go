package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/cleberrangel/reader-calc/internal/logger"
	"github.com/cleberrangel/reader-calc/internal/metrics"
	"github.com/cleberrangel/reader-calc/internal/model"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimitConfig contains configuration for per-client rate limiting
type RateLimitConfig struct {
	RequestsPerMinute int
	Burst             int
	IdleTTL           time.Duration // limiters unused for this long are dropped
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP
type RateLimiter struct {
	config  RateLimitConfig
	metrics *metrics.Metrics
	now     func() time.Time

	mu      sync.Mutex
	clients map[string]*clientLimiter
}

// NewRateLimiter creates a new per-client rate limiter
func NewRateLimiter(config RateLimitConfig, m *metrics.Metrics) *RateLimiter {
	if config.RequestsPerMinute <= 0 {
		config.RequestsPerMinute = 120
	}
	if config.Burst <= 0 {
		config.Burst = 20
	}
	if config.IdleTTL == 0 {
		config.IdleTTL = 10 * time.Minute
	}
	if m == nil {
		m = metrics.Get()
	}

	return &RateLimiter{
		config:  config,
		metrics: m,
		now:     time.Now,
		clients: make(map[string]*clientLimiter),
	}
}

// Allow reports whether the client may perform one more request now
func (rl *RateLimiter) Allow(clientID string) bool {
	now := rl.now()

	rl.mu.Lock()
	cl, exists := rl.clients[clientID]
	if !exists {
		cl = &clientLimiter{
			limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(rl.config.RequestsPerMinute)), rl.config.Burst),
		}
		rl.clients[clientID] = cl
	}
	cl.lastSeen = now
	rl.mu.Unlock()

	return cl.limiter.AllowN(now, 1)
}

// Cleanup removes limiters idle for longer than IdleTTL
func (rl *RateLimiter) Cleanup() int {
	cutoff := rl.now().Add(-rl.config.IdleTTL)
	removed := 0

	rl.mu.Lock()
	for id, cl := range rl.clients {
		if cl.lastSeen.Before(cutoff) {
			delete(rl.clients, id)
			removed++
		}
	}
	rl.mu.Unlock()

	return removed
}

// StartCleanup runs Cleanup every interval until ctx is done
func (rl *RateLimiter) StartCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				rl.Cleanup()
			}
		}
	}()
}

// Clients returns the number of tracked clients
func (rl *RateLimiter) Clients() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.clients)
}

// Middleware rejects requests over the limit with 429
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.Allow(c.ClientIP()) {
			c.Next()
			return
		}

		rl.metrics.IncrementRateLimited()
		logger.FromGin(c).Warn().Str("client_ip", c.ClientIP()).Msg("Rate limit excedido")

		c.Header("Retry-After", "60")
		c.AbortWithStatusJSON(http.StatusTooManyRequests, model.ErrorResponse{
			Success: false,
			Error:   model.ErrRateLimited.Error(),
			Details: "aguarde alguns segundos e tente novamente",
		})
	}
}
