package logger

import (
	"context"
	"log/slog"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// sentryHandler initializes the Sentry SDK and returns a handler that turns
// errors into issues and keeps warnings as searchable logs.
func sentryHandler(cfg Config) (slog.Handler, error) {
	env := cfg.SentryEnvironment
	if env == "" {
		env = "production"
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.SentryDSN,
		Environment: env,
		EnableLogs:  true,
	}); err != nil {
		return nil, err
	}

	return sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   []slog.Level{slog.LevelWarn, slog.LevelError},
	}.NewSentryHandler(context.Background()), nil
}
