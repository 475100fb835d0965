package internal

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/orgwizard/pkg/logger"
)

// Default server timeouts.
const (
	defaultReadTimeout       = 15 * time.Second
	defaultWriteTimeout      = 30 * time.Second
	defaultIdleTimeout       = 120 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
	defaultMaxHeaderBytes    = 1 << 20 // 1MB
	defaultShutdownTimeout   = 30 * time.Second
)

// App owns the router, middleware and error handling.
// It is immutable after New returns.
type App struct {
	router                  chi.Router
	errorHandler            ErrorHandler
	notFoundHandler         HandlerFunc
	methodNotAllowedHandler HandlerFunc
	healthConfig            *healthConfig
	logger                  *slog.Logger
	middlewares             []Middleware
	handlers                []Handler
}

// New creates a new application with the given options.
//
// Example:
//
//	app := orgwizard.New(
//	    orgwizard.WithMiddleware(middlewares.RequestID()),
//	    orgwizard.WithHandlers(handlers.NewWizard(pages, locales)),
//	)
func New(opts ...Option) *App {
	a := &App{
		router: chi.NewRouter(),
		logger: logger.NewNope(),
	}

	for _, opt := range opts {
		opt(a)
	}

	a.setupRoutes()
	return a
}

// ServeHTTP makes the App usable with httptest and any http.Server.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.router.ServeHTTP(w, r)
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Run starts the HTTP server and blocks until shutdown.
//
// Example:
//
//	err := app.Run(":8080", orgwizard.Logger(log), orgwizard.ShutdownHook(redis.Shutdown(client)))
func (a *App) Run(addr string, opts ...RunOption) error {
	cfg := buildRunConfig(opts...)
	if cfg.address != "" {
		addr = cfg.address
	}
	return runServer(runtimeConfig{
		handler:         a.router,
		address:         addr,
		logger:          cfg.logger,
		shutdownTimeout: cfg.shutdownTimeout,
		shutdownHooks:   cfg.shutdownHooks,
		baseCtx:         cfg.baseCtx,
		ready:           cfg.ready,
	})
}

func (a *App) setupRoutes() {
	if a.notFoundHandler != nil {
		a.router.NotFound(a.wrapHandler(a.notFoundHandler))
	}
	if a.methodNotAllowedHandler != nil {
		a.router.MethodNotAllowed(a.wrapHandler(a.methodNotAllowedHandler))
	}

	for _, mw := range a.middlewares {
		a.router.Use(a.adaptMiddleware(mw))
	}

	if a.healthConfig != nil {
		a.router.Get(a.healthConfig.livenessPath, livenessHandler())
		a.router.Get(a.healthConfig.readinessPath,
			readinessHandler(a.healthConfig.checks, a.healthConfig.timeout, a.logger))
	}

	r := &routerAdapter{router: a.router, app: a}
	for _, h := range a.handlers {
		h.Routes(r)
	}
}

// wrapHandler converts a HandlerFunc to http.HandlerFunc using the app's error handler.
func (a *App) wrapHandler(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := newContext(w, r, a)
		if err := h(c); err != nil {
			a.handleError(c, err)
		}
	}
}

// handleError renders err unless the response was already written.
func (a *App) handleError(c Context, err error) {
	if c.Written() {
		a.logger.WarnContext(c, "error after response was written", slog.Any("error", err))
		return
	}
	if a.errorHandler != nil {
		if herr := a.errorHandler(c, err); herr != nil {
			a.logger.ErrorContext(c, "error handler failed", slog.Any("error", herr))
		}
		return
	}
	defaultErrorHandler(c, err)
}

// defaultErrorHandler writes the HTTPError status and message as plain text.
// Other errors become a generic 500.
func defaultErrorHandler(c Context, err error) {
	if httpErr := AsHTTPError(err); httpErr != nil {
		http.Error(c.Response(), httpErr.Message, httpErr.Code)
		return
	}
	c.LogError("unhandled error", slog.Any("error", err))
	http.Error(c.Response(), http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

type healthConfig struct {
	checks        healthChecks
	livenessPath  string
	readinessPath string
	timeout       time.Duration
}

const (
	defaultLivenessPath  = "/health/live"
	defaultReadinessPath = "/health/ready"
)

// HealthOption configures health check endpoints.
type HealthOption func(*healthConfig)

// WithLivenessPath sets a custom liveness endpoint path.
// Defaults to "/health/live".
func WithLivenessPath(path string) HealthOption {
	return func(c *healthConfig) {
		if path != "" {
			c.livenessPath = path
		}
	}
}

// WithReadinessPath sets a custom readiness endpoint path.
// Defaults to "/health/ready".
func WithReadinessPath(path string) HealthOption {
	return func(c *healthConfig) {
		if path != "" {
			c.readinessPath = path
		}
	}
}

// WithHealthTimeout bounds a single readiness probe.
func WithHealthTimeout(d time.Duration) HealthOption {
	return func(c *healthConfig) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithReadinessCheck adds a named readiness check.
// Checks run in parallel during the readiness probe.
//
// Example:
//
//	orgwizard.WithReadinessCheck("redis", redis.Healthcheck(client))
func WithReadinessCheck(name string, fn CheckFunc) HealthOption {
	return func(c *healthConfig) {
		if fn != nil {
			c.checks[name] = fn
		}
	}
}
