// Package integration runs the whole HTTP stack over a real listener:
// form page, form submission, JSON API and health endpoints.
package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/cleberrangel/reader-calc/internal/handler"
	"github.com/cleberrangel/reader-calc/internal/metrics"
	"github.com/cleberrangel/reader-calc/internal/middleware"
	"github.com/cleberrangel/reader-calc/internal/model"
	"github.com/cleberrangel/reader-calc/internal/service"
	"github.com/gin-gonic/gin"
)

// TestContext holds all dependencies for integration tests
type TestContext struct {
	Server  *httptest.Server
	Metrics *metrics.Metrics
}

func setupTestContext(t *testing.T) *TestContext {
	t.Helper()
	gin.SetMode(gin.TestMode)

	m := metrics.New()
	router, err := handler.NewRouter(handler.RouterConfig{
		Calculator:  service.NewCalculatorService(100000, m),
		Metrics:     m,
		RateLimiter: middleware.NewRateLimiter(middleware.RateLimitConfig{RequestsPerMinute: 6000, Burst: 500}, m),
		Version:     "integration",
	})
	if err != nil {
		t.Fatalf("NewRouter() error: %v", err)
	}

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &TestContext{Server: srv, Metrics: m}
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(b)
}

// TestFormWorkflow loads the page, submits the form and checks the result
func TestFormWorkflow(t *testing.T) {
	tc := setupTestContext(t)

	resp, err := http.Get(tc.Server.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	page := readBody(t, resp)
	if resp.StatusCode != http.StatusOK || !strings.Contains(page, "[ SYSTEM.READER_CALC ]") {
		t.Fatalf("unexpected index page (status %d)", resp.StatusCode)
	}
	if resp.Header.Get(middleware.HeaderRequestID) == "" {
		t.Error("request id header missing")
	}

	resp, err = http.PostForm(tc.Server.URL+"/calculate", url.Values{
		"pages":      {"10"},
		"language":   {"native"},
		"difficulty": {"a1"},
		"focus":      {"deep"},
	})
	if err != nil {
		t.Fatalf("POST /calculate: %v", err)
	}
	page = readBody(t, resp)
	if !strings.Contains(page, "8 minutes") {
		t.Errorf("expected 8 minutes in result page")
	}
}

// TestAPIMatchesForm checks that the API and the form agree for every level
// combination at the default page count
func TestAPIMatchesForm(t *testing.T) {
	tc := setupTestContext(t)

	resp, err := http.Get(tc.Server.URL + "/api/v1/levels")
	if err != nil {
		t.Fatalf("GET levels: %v", err)
	}
	var levels struct {
		Data model.LevelCatalog `json:"data"`
	}
	if err := json.Unmarshal([]byte(readBody(t, resp)), &levels); err != nil {
		t.Fatalf("decode levels: %v", err)
	}

	for _, l := range levels.Data.Language {
		for _, d := range levels.Data.Difficulty {
			for _, f := range levels.Data.Focus {
				payload, _ := json.Marshal(map[string]interface{}{
					"pages": 10, "language": l.Code, "difficulty": d.Code, "focus": f.Code,
				})
				resp, err := http.Post(tc.Server.URL+"/api/v1/estimate", "application/json", bytes.NewReader(payload))
				if err != nil {
					t.Fatalf("POST estimate: %v", err)
				}
				var out struct {
					Data model.EstimateResult `json:"data"`
				}
				if err := json.Unmarshal([]byte(readBody(t, resp)), &out); err != nil {
					t.Fatalf("decode estimate: %v", err)
				}

				resp, err = http.PostForm(tc.Server.URL+"/calculate", url.Values{
					"pages": {"10"}, "language": {l.Code}, "difficulty": {d.Code}, "focus": {f.Code},
				})
				if err != nil {
					t.Fatalf("POST form: %v", err)
				}
				if page := readBody(t, resp); !strings.Contains(page, out.Data.Formatted) {
					t.Errorf("%s/%s/%s: form page lacks %q", l.Code, d.Code, f.Code, out.Data.Formatted)
				}
			}
		}
	}
}

// TestConcurrentEstimates fires parallel API calls and checks the counters
func TestConcurrentEstimates(t *testing.T) {
	tc := setupTestContext(t)

	const workers = 20
	var wg sync.WaitGroup
	errs := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			payload := []byte(`{"pages":10,"language":"b2","difficulty":"b2","focus":"normal"}`)
			resp, err := http.Post(tc.Server.URL+"/api/v1/estimate", "application/json", bytes.NewReader(payload))
			if err != nil {
				errs <- err
				return
			}
			resp.Body.Close()
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("request failed: %v", err)
	}

	snap := tc.Metrics.Snapshot()
	if snap.Estimates.BySource[metrics.SourceAPI] != workers {
		t.Errorf("api estimates = %d, want %d", snap.Estimates.BySource[metrics.SourceAPI], workers)
	}
	if snap.Estimates.TotalMinutes != 75*workers {
		t.Errorf("total minutes = %d, want %d", snap.Estimates.TotalMinutes, 75*workers)
	}
}
