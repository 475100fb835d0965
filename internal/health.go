package internal

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"
)

const (
	defaultHealthTimeout = 5 * time.Second

	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
)

// CheckFunc is a readiness check. It matches redis.Healthcheck.
type CheckFunc func(ctx context.Context) error

type healthChecks map[string]CheckFunc

type healthResponse struct {
	Checks map[string]healthCheck `json:"checks,omitempty"`
	Status string                 `json:"status"`
}

type healthCheck struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// livenessHandler always responds OK.
func livenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if wantsJSON(r) {
			writeHealthJSON(w, http.StatusOK, &healthResponse{Status: statusHealthy})
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}
}

// readinessHandler runs all checks and answers 503 if any fails.
func readinessHandler(checks healthChecks, timeout time.Duration, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := runChecks(r.Context(), checks, timeout, logger)

		status := http.StatusOK
		if resp.Status == statusUnhealthy {
			status = http.StatusServiceUnavailable
		}

		if wantsJSON(r) {
			writeHealthJSON(w, status, resp)
			return
		}

		w.WriteHeader(status)
		if resp.Status == statusHealthy {
			_, _ = w.Write([]byte("OK"))
		} else {
			_, _ = w.Write([]byte("Service Unavailable"))
		}
	}
}

// runChecks executes all checks in parallel and aggregates the result.
func runChecks(ctx context.Context, checks healthChecks, timeout time.Duration, logger *slog.Logger) *healthResponse {
	if len(checks) == 0 {
		return &healthResponse{Status: statusHealthy}
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results = make(map[string]healthCheck, len(checks))
		failed  bool
	)

	for name, check := range checks {
		wg.Go(func() {
			result := healthCheck{Status: statusHealthy}
			if err := check(ctx); err != nil {
				result.Status = statusUnhealthy
				result.Error = err.Error()
				logger.WarnContext(ctx, "health check failed",
					slog.String("check", name),
					slog.String("error", err.Error()),
				)
			}

			mu.Lock()
			results[name] = result
			if result.Status == statusUnhealthy {
				failed = true
			}
			mu.Unlock()
		})
	}
	wg.Wait()

	status := statusHealthy
	if failed {
		status = statusUnhealthy
	}
	return &healthResponse{Status: status, Checks: results}
}

func wantsJSON(r *http.Request) bool {
	if r.URL.Query().Get("format") == "json" {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

func writeHealthJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
