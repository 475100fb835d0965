package redis

import "time"

// Option configures a Redis connection.
type Option func(*options)

type options struct {
	poolSize      int
	minIdleConns  int
	retryAttempts int
	retryInterval time.Duration
	dialTimeout   time.Duration
	ioTimeout     time.Duration
}

func defaultOptions() *options {
	return &options{
		poolSize:      10,
		minIdleConns:  2,
		retryAttempts: 3,
		retryInterval: 2 * time.Second,
		dialTimeout:   5 * time.Second,
		ioTimeout:     3 * time.Second,
	}
}

// WithPoolSize sets the maximum number of connections in the pool.
// Default: 10
func WithPoolSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.poolSize = n
		}
	}
}

// WithMinIdleConns sets the minimum number of idle connections.
// Default: 2
func WithMinIdleConns(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.minIdleConns = n
		}
	}
}

// WithRetry configures connection attempts at startup.
// Attempt i (zero-based) waits (i+1)*interval after a failed ping.
// Default: 3 attempts, 2 seconds.
func WithRetry(attempts int, interval time.Duration) Option {
	return func(o *options) {
		o.retryAttempts = attempts
		o.retryInterval = interval
	}
}

// WithDialTimeout sets the timeout for establishing connections.
// Default: 5 seconds
func WithDialTimeout(d time.Duration) Option {
	return func(o *options) {
		o.dialTimeout = d
	}
}

// WithIOTimeout sets the read and write timeouts.
// Default: 3 seconds
func WithIOTimeout(d time.Duration) Option {
	return func(o *options) {
		o.ioTimeout = d
	}
}
