package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// Cache is a generic key-value cache with TTL support.
type Cache[V any] interface {
	// Get retrieves a value by key.
	// Returns ErrNotFound if the key does not exist or has expired.
	Get(ctx context.Context, key string) (V, error)

	// Set stores a value with the given TTL.
	Set(ctx context.Context, key string, value V, ttl time.Duration) error

	// Delete removes a key from the cache.
	Delete(ctx context.Context, key string) error

	// Has checks whether a key exists and has not expired.
	Has(ctx context.Context, key string) (bool, error)

	// Clear removes all entries from the cache.
	Clear(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// Updater is implemented by caches that can read, modify and write a single
// entry atomically.
//
// Update loads key, passes the value to fn and stores the returned value with
// ttl. It returns ErrNotFound when the key is missing or expired. When fn
// returns an error nothing is written and the error is returned as is.
// Implementations may call fn more than once, so fn must not have side
// effects beyond computing the next value.
type Updater[V any] interface {
	Update(ctx context.Context, key string, ttl time.Duration, fn func(V) (V, error)) (V, error)
}

// Marshaler serializes cache values for backends that store bytes.
type Marshaler[V any] interface {
	Marshal(v V) ([]byte, error)
	Unmarshal(data []byte) (V, error)
}

// JSONMarshaler encodes values with encoding/json.
type JSONMarshaler[V any] struct{}

func (JSONMarshaler[V]) Marshal(v V) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Join(ErrMarshal, err)
	}
	return data, nil
}

func (JSONMarshaler[V]) Unmarshal(data []byte) (V, error) {
	var v V
	if err := json.Unmarshal(data, &v); err != nil {
		return v, errors.Join(ErrUnmarshal, err)
	}
	return v, nil
}

// expiry resolves a Set TTL into an absolute expiration.
// The zero time means the entry never expires.
func expiry(now time.Time, ttl, defaultTTL time.Duration) time.Time {
	if ttl == 0 {
		ttl = defaultTTL
	}
	if ttl < 0 {
		return time.Time{}
	}
	return now.Add(ttl)
}
