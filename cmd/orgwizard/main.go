package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/dmitrymomot/orgwizard"
	"github.com/dmitrymomot/orgwizard/config"
	"github.com/dmitrymomot/orgwizard/handlers"
	"github.com/dmitrymomot/orgwizard/middlewares"
	"github.com/dmitrymomot/orgwizard/pkg/cache"
	"github.com/dmitrymomot/orgwizard/pkg/logger"
	"github.com/dmitrymomot/orgwizard/pkg/redis"
	"github.com/dmitrymomot/orgwizard/pkg/slugsync"
)

// pageKeyPrefix namespaces wizard pages in a shared Redis.
const pageKeyPrefix = "orgwizard:page"

func main() {
	if err := config.LoadDotEnv(); err != nil {
		slog.Error("failed to load .env", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logger(), middlewares.RequestIDExtractor())
	if err := run(cfg, log); err != nil {
		log.Error("application error", "error", err)
		sentry.Flush(2 * time.Second)
		os.Exit(1)
	}
	sentry.Flush(2 * time.Second)
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx := context.Background()

	var (
		store        cache.Cache[slugsync.Page]
		healthOpts   []orgwizard.HealthOption
		runOpts      = []orgwizard.RunOption{orgwizard.Logger(log), orgwizard.ShutdownTimeout(cfg.ShutdownTimeout)}
		storeBackend = "memory"
	)

	if cfg.RedisURL != "" {
		client, err := redis.Open(ctx, cfg.RedisURL)
		if err != nil {
			return err
		}
		store = cache.NewRedis[slugsync.Page](client, nil,
			cache.WithPrefix(pageKeyPrefix),
			cache.WithRedisDefaultTTL(cfg.PageTTL),
		)
		healthOpts = append(healthOpts, orgwizard.WithReadinessCheck("redis", redis.Healthcheck(client)))
		runOpts = append(runOpts, orgwizard.ShutdownHook(redis.Shutdown(client)))
		storeBackend = "redis"
	} else {
		mem := cache.NewMemory[slugsync.Page](cache.WithDefaultTTL(cfg.PageTTL))
		store = mem
		runOpts = append(runOpts, orgwizard.ShutdownHook(func(context.Context) error {
			return mem.Close()
		}))
	}

	pages := slugsync.NewPages(store,
		slugsync.WithTTL(cfg.PageTTL),
		slugsync.WithPagesLogger(log.With(slog.String("component", "pages"))),
	)

	app := orgwizard.New(
		orgwizard.WithCustomLogger(log.With(slog.String("component", "http"))),
		orgwizard.WithMiddleware(
			middlewares.RequestID(),
			middlewares.Recover(),
		),
		orgwizard.WithHandlers(
			handlers.NewWizard(pages, cfg.Locales),
			handlers.NewSlugAPI(time.Now),
		),
		orgwizard.WithErrorHandler(handlers.HandleError),
		orgwizard.WithNotFoundHandler(handlers.HandleNotFound),
		orgwizard.WithMethodNotAllowedHandler(handlers.HandleMethodNotAllowed),
		orgwizard.WithHealthChecks(healthOpts...),
	)

	log.Info("starting organiser wizard",
		slog.String("address", cfg.Address),
		slog.String("page_store", storeBackend),
		slog.Int("locales", len(cfg.Locales)),
	)

	return app.Run(cfg.Address, runOpts...)
}
