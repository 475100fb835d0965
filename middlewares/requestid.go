package middlewares

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/orgwizard/internal"
	"github.com/dmitrymomot/orgwizard/pkg/logger"
)

// DefaultRequestIDHeaders are the headers checked (in order) for an existing request ID.
var DefaultRequestIDHeaders = []string{"X-Request-ID", "X-Correlation-ID"}

// RequestIDConfig configures the request ID middleware.
type RequestIDConfig struct {
	Generator      func() string // ID generator function
	ResponseHeader string        // Response header name
	Headers        []string      // Headers to check for existing ID (in order)
}

// RequestIDOption configures RequestIDConfig.
type RequestIDOption func(*RequestIDConfig)

// WithRequestIDHeaders sets the headers to check for existing request IDs.
func WithRequestIDHeaders(headers ...string) RequestIDOption {
	return func(cfg *RequestIDConfig) {
		cfg.Headers = headers
	}
}

// WithRequestIDGenerator sets a custom ID generator function.
func WithRequestIDGenerator(gen func() string) RequestIDOption {
	return func(cfg *RequestIDConfig) {
		if gen != nil {
			cfg.Generator = gen
		}
	}
}

// WithRequestIDResponseHeader sets the response header name.
func WithRequestIDResponseHeader(header string) RequestIDOption {
	return func(cfg *RequestIDConfig) {
		cfg.ResponseHeader = header
	}
}

// RequestID returns middleware that assigns an ID to each request.
// The ID is stored in the context and echoed in a response header.
func RequestID(opts ...RequestIDOption) internal.Middleware {
	cfg := &RequestIDConfig{
		Headers:        DefaultRequestIDHeaders,
		Generator:      uuid.NewString,
		ResponseHeader: "X-Request-ID",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			// First match wins so upstream tracing IDs survive.
			var reqID string
			for _, header := range cfg.Headers {
				if v := c.Header(header); v != "" {
					reqID = v
					break
				}
			}
			if reqID == "" {
				reqID = cfg.Generator()
			}

			c.Set(internal.RequestIDKey, reqID)
			if cfg.ResponseHeader != "" {
				c.SetHeader(cfg.ResponseHeader, reqID)
			}
			return next(c)
		}
	}
}

// GetRequestID returns the request ID, or "" when none is set.
func GetRequestID(ctx context.Context) string {
	v, _ := ctx.Value(internal.RequestIDKey).(string)
	return v
}

// RequestIDExtractor adds "request_id" to log entries.
func RequestIDExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if v := GetRequestID(ctx); v != "" {
			return slog.String("request_id", v), true
		}
		return slog.Attr{}, false
	}
}
