package orgwizard

import (
	"context"
	"log/slog"
	"net"
	"time"

	"github.com/dmitrymomot/orgwizard/internal"
	"github.com/dmitrymomot/orgwizard/pkg/logger"
)

// Type aliases - public API
type (
	// App owns the router, middleware and error handling.
	App = internal.App

	// Router is the interface handlers use to declare routes.
	Router = internal.Router

	// Context provides request/response access and helper methods.
	Context = internal.Context

	// Handler declares routes on a router.
	Handler = internal.Handler

	// HandlerFunc is the signature for route handlers.
	HandlerFunc = internal.HandlerFunc

	// Middleware wraps a HandlerFunc to add cross-cutting concerns.
	Middleware = internal.Middleware

	// ErrorHandler handles errors returned from handlers.
	ErrorHandler = internal.ErrorHandler

	// Option configures the application.
	Option = internal.Option

	// RunOption configures the server runtime.
	RunOption = internal.RunOption

	// Component is the interface for renderable templates.
	Component = internal.Component

	// HealthOption configures health check endpoints.
	HealthOption = internal.HealthOption

	// CheckFunc is a readiness check.
	CheckFunc = internal.CheckFunc

	// HTTPError carries a status code and a user-facing message.
	HTTPError = internal.HTTPError

	// HTTPErrorOption configures an HTTPError.
	HTTPErrorOption = internal.HTTPErrorOption

	// ResponseWriter tracks the written status and handles HTMX error statuses.
	ResponseWriter = internal.ResponseWriter

	// ContextExtractor extracts a slog attribute from context.
	ContextExtractor = logger.ContextExtractor

	// LoggerConfig configures the application logger.
	LoggerConfig = logger.Config
)

// New creates a new application with the given options.
func New(opts ...Option) *App {
	return internal.New(opts...)
}

// WithMiddleware adds global middleware to the application.
func WithMiddleware(mw ...Middleware) Option {
	return internal.WithMiddleware(mw...)
}

// WithHandlers registers handlers that declare routes.
func WithHandlers(h ...Handler) Option {
	return internal.WithHandlers(h...)
}

// WithErrorHandler sets the handler for errors returned from handlers.
func WithErrorHandler(h ErrorHandler) Option {
	return internal.WithErrorHandler(h)
}

// WithNotFoundHandler sets a custom 404 handler.
func WithNotFoundHandler(h HandlerFunc) Option {
	return internal.WithNotFoundHandler(h)
}

// WithMethodNotAllowedHandler sets a custom 405 handler.
func WithMethodNotAllowedHandler(h HandlerFunc) Option {
	return internal.WithMethodNotAllowedHandler(h)
}

// WithHealthChecks enables the liveness and readiness endpoints.
func WithHealthChecks(opts ...HealthOption) Option {
	return internal.WithHealthChecks(opts...)
}

// WithLivenessPath sets a custom liveness endpoint path.
func WithLivenessPath(path string) HealthOption {
	return internal.WithLivenessPath(path)
}

// WithReadinessPath sets a custom readiness endpoint path.
func WithReadinessPath(path string) HealthOption {
	return internal.WithReadinessPath(path)
}

// WithHealthTimeout bounds a single readiness probe.
func WithHealthTimeout(d time.Duration) HealthOption {
	return internal.WithHealthTimeout(d)
}

// WithReadinessCheck adds a named readiness check.
func WithReadinessCheck(name string, fn CheckFunc) HealthOption {
	return internal.WithReadinessCheck(name, fn)
}

// WithLogger builds the app logger and tags entries with the component name.
func WithLogger(component string, cfg LoggerConfig, extractors ...ContextExtractor) Option {
	return internal.WithLogger(component, cfg, extractors...)
}

// WithCustomLogger sets a fully custom logger.
func WithCustomLogger(l *slog.Logger) Option {
	return internal.WithCustomLogger(l)
}

// Address overrides the address passed to Run.
func Address(addr string) RunOption {
	return internal.Address(addr)
}

// Logger sets the runtime logger.
func Logger(l *slog.Logger) RunOption {
	return internal.Logger(l)
}

// ShutdownTimeout bounds the graceful shutdown.
func ShutdownTimeout(d time.Duration) RunOption {
	return internal.ShutdownTimeout(d)
}

// ShutdownHook registers a cleanup function to run after the server stops.
func ShutdownHook(fn func(context.Context) error) RunOption {
	return internal.ShutdownHook(fn)
}

// WithContext sets the base context for signal handling.
func WithContext(ctx context.Context) RunOption {
	return internal.WithContext(ctx)
}

// OnReady is called with the bound address once the listener is open.
func OnReady(fn func(net.Addr)) RunOption {
	return internal.OnReady(fn)
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(code int, message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.NewHTTPError(code, message, opts...)
}

// ErrBadRequest creates a 400 HTTPError.
func ErrBadRequest(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrBadRequest(message, opts...)
}

// ErrNotFound creates a 404 HTTPError.
func ErrNotFound(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrNotFound(message, opts...)
}

// ErrUnprocessable creates a 422 HTTPError.
func ErrUnprocessable(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrUnprocessable(message, opts...)
}

// ErrInternal creates a 500 HTTPError.
func ErrInternal(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrInternal(message, opts...)
}

// ErrServiceUnavailable creates a 503 HTTPError.
func ErrServiceUnavailable(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrServiceUnavailable(message, opts...)
}

// WithError attaches the underlying cause to an HTTPError.
func WithError(err error) HTTPErrorOption {
	return internal.WithError(err)
}

// AsHTTPError extracts an *HTTPError from the error chain.
func AsHTTPError(err error) *HTTPError {
	return internal.AsHTTPError(err)
}
