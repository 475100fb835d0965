package cache

import "time"

// MemoryOption configures the in-memory cache.
type MemoryOption func(*memoryOptions)

type memoryOptions struct {
	now             func() time.Time
	defaultTTL      time.Duration
	cleanupInterval time.Duration
	maxEntries      int
}

func defaultMemoryOptions() *memoryOptions {
	return &memoryOptions{
		now:             time.Now,
		defaultTTL:      time.Hour,
		cleanupInterval: time.Minute,
	}
}

// WithDefaultTTL sets the expiration used when Set is called with a zero TTL.
// Default: 1 hour.
func WithDefaultTTL(d time.Duration) MemoryOption {
	return func(o *memoryOptions) {
		o.defaultTTL = d
	}
}

// WithCleanupInterval sets how often the janitor drops expired entries.
// Zero disables the janitor; expired entries are then only dropped on access.
// Default: 1 minute.
func WithCleanupInterval(d time.Duration) MemoryOption {
	return func(o *memoryOptions) {
		o.cleanupInterval = d
	}
}

// WithMaxEntries caps the number of entries. The least recently used entry is
// evicted when the cap is reached. Zero means unlimited.
func WithMaxEntries(n int) MemoryOption {
	return func(o *memoryOptions) {
		o.maxEntries = n
	}
}

// WithMemoryClock sets the time source used for expiration.
func WithMemoryClock(now func() time.Time) MemoryOption {
	return func(o *memoryOptions) {
		if now != nil {
			o.now = now
		}
	}
}
