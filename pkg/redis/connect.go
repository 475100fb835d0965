package redis

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Open creates a Redis client and verifies connectivity.
func Open(ctx context.Context, url string, opts ...Option) (redis.UniversalClient, error) {
	if url == "" {
		return nil, ErrEmptyConnectionURL
	}
	if !strings.HasPrefix(url, "redis://") && !strings.HasPrefix(url, "rediss://") {
		return nil, ErrFailedToParseURL
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	ro, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseURL, err)
	}

	ro.PoolSize = o.poolSize
	ro.MinIdleConns = o.minIdleConns
	ro.DialTimeout = o.dialTimeout
	ro.ReadTimeout = o.ioTimeout
	ro.WriteTimeout = o.ioTimeout

	return connect(ctx, ro, o.retryAttempts, o.retryInterval)
}

// MustOpen is like Open but exits the process on failure.
func MustOpen(ctx context.Context, url string, opts ...Option) redis.UniversalClient {
	client, err := Open(ctx, url, opts...)
	if err != nil {
		slog.Error("failed to open redis connection", "error", err)
		os.Exit(1)
	}
	return client
}

func connect(ctx context.Context, ro *redis.Options, attempts int, interval time.Duration) (redis.UniversalClient, error) {
	var lastErr error
	for i := range max(attempts, 1) {
		client := redis.NewClient(ro)
		if lastErr = client.Ping(ctx).Err(); lastErr == nil {
			return client, nil
		}
		_ = client.Close()

		if i == attempts-1 {
			break
		}
		if err := wait(ctx, time.Duration(i+1)*interval); err != nil {
			return nil, errors.Join(ErrConnectionFailed, err)
		}
	}
	return nil, errors.Join(ErrConnectionFailed, lastErr)
}

func wait(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Healthcheck returns a readiness check that pings the server.
func Healthcheck(client redis.UniversalClient) func(context.Context) error {
	return func(ctx context.Context) error {
		if client == nil {
			return ErrHealthcheckFailed
		}
		if err := client.Ping(ctx).Err(); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}

// Shutdown returns a shutdown hook that closes the client.
func Shutdown(client io.Closer) func(context.Context) error {
	return func(context.Context) error {
		return client.Close()
	}
}
