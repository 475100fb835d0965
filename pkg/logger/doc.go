// Package logger builds slog loggers with context extraction and optional
// Sentry reporting.
//
// # Basic Usage
//
//	log := logger.New(logger.Config{Level: "debug"}, middlewares.RequestIDExtractor())
//	log.InfoContext(ctx, "wizard page opened", slog.String("page_id", id))
//	// {"level":"INFO","msg":"wizard page opened","page_id":"…","request_id":"…"}
//
// Config.Format selects "json" (default) or "text" output. Unknown levels fall
// back to info.
//
// # Context Extractors
//
// A ContextExtractor pulls one attribute out of the context on every log call:
//
//	type ContextExtractor func(ctx context.Context) (slog.Attr, bool)
//
// Returning false skips the attribute for that entry.
//
// # Sentry
//
// When Config.SentryDSN is set, warnings and errors are also forwarded to
// Sentry; errors become issues. Initialization failures are logged and the
// logger keeps writing locally.
//
// NewNope returns a logger that discards everything and is the default for
// components that were not given one.
package logger
