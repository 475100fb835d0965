package logger

import (
	"context"
	"log/slog"
)

// ContextExtractor extracts a log attribute from context.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// extractorHandler adds extracted attributes to every record.
type extractorHandler struct {
	next       slog.Handler
	extractors []ContextExtractor
}

// WithExtractors wraps next so every record carries the attributes found by
// extractors. Nil extractors are skipped.
func WithExtractors(next slog.Handler, extractors ...ContextExtractor) slog.Handler {
	clean := make([]ContextExtractor, 0, len(extractors))
	for _, ex := range extractors {
		if ex != nil {
			clean = append(clean, ex)
		}
	}
	if len(clean) == 0 {
		return next
	}
	return &extractorHandler{next: next, extractors: clean}
}

func (h *extractorHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *extractorHandler) Handle(ctx context.Context, rec slog.Record) error {
	for _, ex := range h.extractors {
		if attr, ok := ex(ctx); ok {
			rec.AddAttrs(attr)
		}
	}
	return h.next.Handle(ctx, rec)
}

func (h *extractorHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &extractorHandler{next: h.next.WithAttrs(attrs), extractors: h.extractors}
}

func (h *extractorHandler) WithGroup(name string) slog.Handler {
	return &extractorHandler{next: h.next.WithGroup(name), extractors: h.extractors}
}
