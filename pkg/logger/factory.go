package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config configures New.
type Config struct {
	// Output defaults to os.Stdout.
	Output io.Writer
	// Level is one of debug, info, warn, error. Default: info.
	Level string
	// Format is json or text. Default: json.
	Format string
	// SentryDSN enables Sentry forwarding when non-empty.
	SentryDSN string
	// SentryEnvironment tags Sentry events. Default: production.
	SentryEnvironment string
}

// New creates a logger from cfg.
func New(cfg Config, extractors ...ContextExtractor) *slog.Logger {
	local := localHandler(cfg)

	var h slog.Handler = local
	if cfg.SentryDSN != "" {
		if sh, err := sentryHandler(cfg); err != nil {
			slog.New(local).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		} else {
			h = fanout{local, sh}
		}
	}

	return slog.New(WithExtractors(h, extractors...))
}

// NewNope returns a logger that discards all output.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel maps a level name to slog.Level. Unknown names map to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func localHandler(cfg Config) slog.Handler {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}
	if strings.EqualFold(cfg.Format, "text") {
		return slog.NewTextHandler(out, opts)
	}
	return slog.NewJSONHandler(out, opts)
}
