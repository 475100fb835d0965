package htmx

import (
	"context"
	"io"
	"net/http"
	"strings"
)

// Renderable is compatible with templ.Component.
type Renderable interface {
	Render(ctx context.Context, w io.Writer) error
}

// Config holds HTMX render configuration.
type Config struct {
	OOBComponents []Renderable
	Retarget      string
	Reswap        SwapStrategy
	PushURL       string
	Triggers      []string
	Refresh       bool
}

// RenderOption configures HTMX render behavior.
type RenderOption func(*Config)

// NewConfig creates a Config from options.
func NewConfig(opts ...RenderOption) *Config {
	cfg := &Config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// ApplyHeaders sets HTMX headers on the response. Must run before WriteHeader.
func (c *Config) ApplyHeaders(w http.ResponseWriter) {
	if c == nil {
		return
	}

	h := w.Header()
	if c.Retarget != "" {
		h.Set(HeaderHXRetarget, c.Retarget)
	}
	if c.Reswap != "" {
		h.Set(HeaderHXReswap, string(c.Reswap))
	}
	if c.PushURL != "" {
		h.Set(HeaderHXPushURL, c.PushURL)
	}
	if len(c.Triggers) > 0 {
		h.Set(HeaderHXTrigger, strings.Join(c.Triggers, ", "))
	}
	if c.Refresh {
		h.Set(HeaderHXRefresh, "true")
	}
}

// WithOOB appends out-of-band components. They must carry id and hx-swap-oob.
func WithOOB(components ...Renderable) RenderOption {
	return func(c *Config) {
		c.OOBComponents = append(c.OOBComponents, components...)
	}
}

// WithRetarget sets HX-Retarget.
func WithRetarget(selector string) RenderOption {
	return func(c *Config) {
		c.Retarget = selector
	}
}

// WithReswap sets HX-Reswap.
func WithReswap(strategy SwapStrategy) RenderOption {
	return func(c *Config) {
		c.Reswap = strategy
	}
}

// WithPushURL sets HX-Push-Url. Pass "false" to prevent the history update.
func WithPushURL(url string) RenderOption {
	return func(c *Config) {
		c.PushURL = url
	}
}

// WithTrigger adds client-side events to HX-Trigger.
func WithTrigger(events ...string) RenderOption {
	return func(c *Config) {
		c.Triggers = append(c.Triggers, events...)
	}
}

// WithRefresh forces a full page refresh.
func WithRefresh() RenderOption {
	return func(c *Config) {
		c.Refresh = true
	}
}
