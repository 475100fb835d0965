package internal

import (
	"log/slog"

	"github.com/dmitrymomot/orgwizard/pkg/logger"
)

// Option configures the application.
type Option func(*App)

// WithMiddleware adds global middleware to the application.
// Middleware is applied in the order provided.
func WithMiddleware(mw ...Middleware) Option {
	return func(a *App) {
		a.middlewares = append(a.middlewares, mw...)
	}
}

// WithHandlers registers handlers that declare routes.
func WithHandlers(h ...Handler) Option {
	return func(a *App) {
		a.handlers = append(a.handlers, h...)
	}
}

// WithErrorHandler sets the handler for errors returned from handlers.
//
// Example:
//
//	orgwizard.WithErrorHandler(func(c orgwizard.Context, err error) error {
//	    return c.Render(http.StatusInternalServerError, views.ErrorPage(500, "Something went wrong"))
//	})
func WithErrorHandler(h ErrorHandler) Option {
	return func(a *App) {
		a.errorHandler = h
	}
}

// WithNotFoundHandler sets a custom 404 handler.
func WithNotFoundHandler(h HandlerFunc) Option {
	return func(a *App) {
		a.notFoundHandler = h
	}
}

// WithMethodNotAllowedHandler sets a custom 405 handler.
func WithMethodNotAllowedHandler(h HandlerFunc) Option {
	return func(a *App) {
		a.methodNotAllowedHandler = h
	}
}

// WithHealthChecks enables the liveness and readiness endpoints.
// Liveness always answers OK while the process runs. Readiness runs all
// configured checks.
//
// Example:
//
//	orgwizard.WithHealthChecks(
//	    orgwizard.WithReadinessCheck("redis", redis.Healthcheck(client)),
//	)
func WithHealthChecks(opts ...HealthOption) Option {
	return func(a *App) {
		cfg := &healthConfig{
			livenessPath:  defaultLivenessPath,
			readinessPath: defaultReadinessPath,
			timeout:       defaultHealthTimeout,
			checks:        make(healthChecks),
		}
		for _, opt := range opts {
			opt(cfg)
		}
		a.healthConfig = cfg
	}
}

// WithLogger builds the app logger from cfg and tags every entry with the
// component name. Extractors pull values such as the request ID from context.
func WithLogger(component string, cfg logger.Config, extractors ...logger.ContextExtractor) Option {
	return func(a *App) {
		a.logger = logger.New(cfg, extractors...).With(slog.String("component", component))
	}
}

// WithCustomLogger sets a fully custom logger.
func WithCustomLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}
