package internal_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/orgwizard/internal"
)

func TestHealthChecks(t *testing.T) {
	t.Parallel()

	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	t.Run("liveness always OK", func(t *testing.T) {
		t.Parallel()
		app := internal.New(internal.WithHealthChecks(internal.WithReadinessCheck("redis", down)))
		rec := httptest.NewRecorder()
		app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK", rec.Body.String())
	})

	t.Run("readiness healthy", func(t *testing.T) {
		t.Parallel()
		app := internal.New(internal.WithHealthChecks(internal.WithReadinessCheck("redis", ok)))
		rec := httptest.NewRecorder()
		app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("readiness reports failing checks as JSON", func(t *testing.T) {
		t.Parallel()
		app := internal.New(internal.WithHealthChecks(
			internal.WithReadinessCheck("cache", ok),
			internal.WithReadinessCheck("redis", down),
		))
		req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
		req.Header.Set("Accept", "application/json")
		rec := httptest.NewRecorder()
		app.ServeHTTP(rec, req)

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var body struct {
			Status string `json:"status"`
			Checks map[string]struct {
				Status string `json:"status"`
				Error  string `json:"error"`
			} `json:"checks"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "unhealthy", body.Status)
		assert.Equal(t, "healthy", body.Checks["cache"].Status)
		assert.Equal(t, "connection refused", body.Checks["redis"].Error)
	})

	t.Run("custom paths", func(t *testing.T) {
		t.Parallel()
		app := internal.New(internal.WithHealthChecks(
			internal.WithLivenessPath("/livez"),
			internal.WithReadinessPath("/readyz"),
		))
		for _, path := range []string{"/livez", "/readyz?format=json"} {
			rec := httptest.NewRecorder()
			app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, rec.Code, path)
		}
	})

	t.Run("disabled by default", func(t *testing.T) {
		t.Parallel()
		app := internal.New()
		rec := httptest.NewRecorder()
		app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
