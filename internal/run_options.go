package internal

import (
	"context"
	"log/slog"
	"net"
	"time"
)

// RunOption configures the server runtime.
type RunOption func(*runConfig)

type runConfig struct {
	address         string
	logger          *slog.Logger
	shutdownTimeout time.Duration
	shutdownHooks   []func(context.Context) error
	baseCtx         context.Context
	ready           func(net.Addr)
}

func buildRunConfig(opts ...RunOption) *runConfig {
	cfg := &runConfig{shutdownTimeout: defaultShutdownTimeout}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Address overrides the address passed to Run.
func Address(addr string) RunOption {
	return func(c *runConfig) {
		if addr != "" {
			c.address = addr
		}
	}
}

// Logger sets the runtime logger. If nil, logging is disabled.
func Logger(l *slog.Logger) RunOption {
	return func(c *runConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// ShutdownTimeout bounds the graceful shutdown of the server and its hooks.
// Defaults to 30 seconds.
func ShutdownTimeout(d time.Duration) RunOption {
	return func(c *runConfig) {
		if d > 0 {
			c.shutdownTimeout = d
		}
	}
}

// ShutdownHook registers a cleanup function to run after the server stops.
// Hooks run in registration order.
//
// Example:
//
//	orgwizard.ShutdownHook(redis.Shutdown(client))
func ShutdownHook(fn func(context.Context) error) RunOption {
	return func(c *runConfig) {
		if fn != nil {
			c.shutdownHooks = append(c.shutdownHooks, fn)
		}
	}
}

// WithContext sets the base context for signal handling.
// Cancelling it triggers a graceful shutdown.
func WithContext(ctx context.Context) RunOption {
	return func(c *runConfig) {
		if ctx != nil {
			c.baseCtx = ctx
		}
	}
}

// OnReady is called with the bound address once the listener is open.
func OnReady(fn func(net.Addr)) RunOption {
	return func(c *runConfig) {
		c.ready = fn
	}
}
