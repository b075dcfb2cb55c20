package metrics

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// Estimate sources
const (
	SourceForm = "form"
	SourceAPI  = "api"
	SourceCLI  = "cli"
)

// EndpointMetrics tracks metrics for a specific endpoint
type EndpointMetrics struct {
	Requests     int64
	Errors       int64
	TotalLatency int64
}

// Metrics holds all application metrics
type Metrics struct {
	mu sync.RWMutex

	// Request metrics
	TotalRequests      int64
	SuccessfulRequests int64
	FailedRequests     int64
	RateLimited        int64

	// Request latency (in milliseconds)
	TotalLatency int64
	RequestCount int64

	// Estimate metrics
	EstimatesComputed int64
	EstimateErrors    int64
	MinutesEstimated  int64
	PagesEstimated    int64

	// Estimates per source (form, api, cli)
	EstimatesBySource map[string]*int64

	// Endpoint-specific metrics
	EndpointMetrics map[string]*EndpointMetrics

	// Start time for uptime calculation
	StartTime time.Time
}

// global metrics instance
var globalMetrics *Metrics
var once sync.Once

// New creates an empty metrics instance
func New() *Metrics {
	return &Metrics{
		StartTime:         time.Now(),
		EstimatesBySource: make(map[string]*int64),
		EndpointMetrics:   make(map[string]*EndpointMetrics),
	}
}

// Init initializes the global metrics instance
func Init() {
	once.Do(func() {
		globalMetrics = New()
	})
}

// Get returns the global metrics instance
func Get() *Metrics {
	Init()
	return globalMetrics
}

// IncrementRequests increments request counters
func (m *Metrics) IncrementRequests(success bool, latencyMs int64) {
	atomic.AddInt64(&m.TotalRequests, 1)
	atomic.AddInt64(&m.TotalLatency, latencyMs)
	atomic.AddInt64(&m.RequestCount, 1)

	if success {
		atomic.AddInt64(&m.SuccessfulRequests, 1)
	} else {
		atomic.AddInt64(&m.FailedRequests, 1)
	}
}

// IncrementRateLimited counts a request rejected by the rate limiter
func (m *Metrics) IncrementRateLimited() {
	atomic.AddInt64(&m.RateLimited, 1)
}

// RecordEstimate records a computed estimate
func (m *Metrics) RecordEstimate(source string, pages, minutes int) {
	atomic.AddInt64(&m.EstimatesComputed, 1)
	atomic.AddInt64(&m.PagesEstimated, int64(pages))
	atomic.AddInt64(&m.MinutesEstimated, int64(minutes))

	m.mu.RLock()
	counter, exists := m.EstimatesBySource[source]
	m.mu.RUnlock()

	if !exists {
		m.mu.Lock()
		if m.EstimatesBySource == nil {
			m.EstimatesBySource = make(map[string]*int64)
		}
		counter, exists = m.EstimatesBySource[source]
		if !exists {
			counter = new(int64)
			m.EstimatesBySource[source] = counter
		}
		m.mu.Unlock()
	}

	atomic.AddInt64(counter, 1)
}

// IncrementEstimateError counts a rejected estimate request
func (m *Metrics) IncrementEstimateError() {
	atomic.AddInt64(&m.EstimateErrors, 1)
}

// TrackEndpoint tracks metrics for a specific endpoint
func (m *Metrics) TrackEndpoint(path, method string, statusCode int, latencyMs int64) {
	key := method + " " + path

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.EndpointMetrics == nil {
		m.EndpointMetrics = make(map[string]*EndpointMetrics)
	}

	em, exists := m.EndpointMetrics[key]
	if !exists {
		em = &EndpointMetrics{}
		m.EndpointMetrics[key] = em
	}

	atomic.AddInt64(&em.Requests, 1)
	atomic.AddInt64(&em.TotalLatency, latencyMs)
	if statusCode >= 400 {
		atomic.AddInt64(&em.Errors, 1)
	}
}

// GetEndpointMetrics returns a copy of endpoint metrics
func (m *Metrics) GetEndpointMetrics() map[string]EndpointMetrics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[string]EndpointMetrics)
	for k, v := range m.EndpointMetrics {
		result[k] = EndpointMetrics{
			Requests:     atomic.LoadInt64(&v.Requests),
			Errors:       atomic.LoadInt64(&v.Errors),
			TotalLatency: atomic.LoadInt64(&v.TotalLatency),
		}
	}
	return result
}

// GetAverageLatency returns average request latency in milliseconds
func (m *Metrics) GetAverageLatency() float64 {
	count := atomic.LoadInt64(&m.RequestCount)
	if count == 0 {
		return 0
	}
	total := atomic.LoadInt64(&m.TotalLatency)
	return float64(total) / float64(count)
}

// GetUptime returns the application uptime
func (m *Metrics) GetUptime() time.Duration {
	return time.Since(m.StartTime)
}

// EndpointMetricsSnapshot represents endpoint metrics in a snapshot
type EndpointMetricsSnapshot struct {
	Requests     int64   `json:"requests"`
	Errors       int64   `json:"errors"`
	ErrorRate    float64 `json:"error_rate"`
	AvgLatencyMs float64 `json:"avg_latency_ms"`
}

// MetricsSnapshot represents a point-in-time snapshot of all metrics
type MetricsSnapshot struct {
	UptimeSeconds float64 `json:"uptime_seconds"`
	StartTime     string  `json:"start_time"`

	Requests struct {
		Total        int64   `json:"total"`
		Successful   int64   `json:"successful"`
		Failed       int64   `json:"failed"`
		RateLimited  int64   `json:"rate_limited"`
		AvgLatencyMs float64 `json:"avg_latency_ms"`
	} `json:"requests"`

	Estimates struct {
		Computed     int64            `json:"computed"`
		Errors       int64            `json:"errors"`
		TotalPages   int64            `json:"total_pages"`
		TotalMinutes int64            `json:"total_minutes"`
		AvgMinutes   float64          `json:"avg_minutes"`
		BySource     map[string]int64 `json:"by_source,omitempty"`
	} `json:"estimates"`

	System struct {
		Goroutines   int    `json:"goroutines"`
		HeapAllocMB  uint64 `json:"heap_alloc_mb"`
		HeapInUseMB  uint64 `json:"heap_inuse_mb"`
		StackInUseMB uint64 `json:"stack_inuse_mb"`
		NumGC        uint32 `json:"num_gc"`
	} `json:"system"`

	Endpoints map[string]EndpointMetricsSnapshot `json:"endpoints,omitempty"`
}

// Snapshot returns a point-in-time snapshot of all metrics
func (m *Metrics) Snapshot() MetricsSnapshot {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	snapshot := MetricsSnapshot{}

	snapshot.UptimeSeconds = m.GetUptime().Seconds()
	snapshot.StartTime = m.StartTime.Format(time.RFC3339)

	snapshot.Requests.Total = atomic.LoadInt64(&m.TotalRequests)
	snapshot.Requests.Successful = atomic.LoadInt64(&m.SuccessfulRequests)
	snapshot.Requests.Failed = atomic.LoadInt64(&m.FailedRequests)
	snapshot.Requests.RateLimited = atomic.LoadInt64(&m.RateLimited)
	snapshot.Requests.AvgLatencyMs = m.GetAverageLatency()

	computed := atomic.LoadInt64(&m.EstimatesComputed)
	minutes := atomic.LoadInt64(&m.MinutesEstimated)
	snapshot.Estimates.Computed = computed
	snapshot.Estimates.Errors = atomic.LoadInt64(&m.EstimateErrors)
	snapshot.Estimates.TotalPages = atomic.LoadInt64(&m.PagesEstimated)
	snapshot.Estimates.TotalMinutes = minutes
	if computed > 0 {
		snapshot.Estimates.AvgMinutes = float64(minutes) / float64(computed)
	}

	m.mu.RLock()
	if len(m.EstimatesBySource) > 0 {
		snapshot.Estimates.BySource = make(map[string]int64, len(m.EstimatesBySource))
		for source, counter := range m.EstimatesBySource {
			snapshot.Estimates.BySource[source] = atomic.LoadInt64(counter)
		}
	}
	m.mu.RUnlock()

	snapshot.System.Goroutines = runtime.NumGoroutine()
	snapshot.System.HeapAllocMB = memStats.HeapAlloc / 1024 / 1024
	snapshot.System.HeapInUseMB = memStats.HeapInuse / 1024 / 1024
	snapshot.System.StackInUseMB = memStats.StackInuse / 1024 / 1024
	snapshot.System.NumGC = memStats.NumGC

	endpointMetrics := m.GetEndpointMetrics()
	if len(endpointMetrics) > 0 {
		snapshot.Endpoints = make(map[string]EndpointMetricsSnapshot)
		for k, v := range endpointMetrics {
			em := EndpointMetricsSnapshot{
				Requests: v.Requests,
				Errors:   v.Errors,
			}
			if v.Requests > 0 {
				em.ErrorRate = float64(v.Errors) / float64(v.Requests) * 100
				em.AvgLatencyMs = float64(v.TotalLatency) / float64(v.Requests)
			}
			snapshot.Endpoints[k] = em
		}
	}

	return snapshot
}

// HealthStatus represents the health status of a component
type HealthStatus struct {
	Status  string `json:"status"` // "healthy", "degraded", "unhealthy"
	Message string `json:"message,omitempty"`
}

// HealthCheck represents the overall health check response
type HealthCheck struct {
	Status     string                  `json:"status"` // "healthy", "degraded", "unhealthy"
	Version    string                  `json:"version"`
	Uptime     string                  `json:"uptime"`
	Timestamp  string                  `json:"timestamp"`
	Components map[string]HealthStatus `json:"components"`
}

// CheckMemoryHealth checks memory usage
func CheckMemoryHealth(maxHeapMB uint64) HealthStatus {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	heapMB := memStats.HeapAlloc / 1024 / 1024

	if heapMB > maxHeapMB {
		return HealthStatus{
			Status:  "unhealthy",
			Message: "heap memory exceeds limit",
		}
	}

	// Warn if using more than 80% of limit
	if heapMB > (maxHeapMB * 80 / 100) {
		return HealthStatus{
			Status:  "degraded",
			Message: "heap memory usage high",
		}
	}

	return HealthStatus{
		Status: "healthy",
	}
}

// CheckEstimatorHealth runs the default estimate and compares it with the
// known value for the form defaults
func CheckEstimatorHealth(estimate func() int, want int) HealthStatus {
	if got := estimate(); got != want {
		return HealthStatus{
			Status:  "unhealthy",
			Message: "estimator self-check mismatch",
		}
	}
	return HealthStatus{
		Status: "healthy",
	}
}

// DetermineOverallStatus determines overall health from component statuses
func DetermineOverallStatus(components map[string]HealthStatus) string {
	hasUnhealthy := false
	hasDegraded := false

	for _, status := range components {
		switch status.Status {
		case "unhealthy":
			hasUnhealthy = true
		case "degraded":
			hasDegraded = true
		}
	}

	if hasUnhealthy {
		return "unhealthy"
	}
	if hasDegraded {
		return "degraded"
	}
	return "healthy"
}
