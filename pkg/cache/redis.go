package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a cache backed by Redis.
type Redis[V any] struct {
	client    redis.UniversalClient
	marshaler Marshaler[V]
	opts      redisOptions
}

// NewRedis creates a Redis-backed cache. A nil Marshaler selects JSON.
// The client lifecycle stays with the caller (see pkg/redis.Shutdown).
func NewRedis[V any](client redis.UniversalClient, m Marshaler[V], opts ...RedisOption) *Redis[V] {
	o := redisOptions{defaultTTL: time.Hour}
	for _, opt := range opts {
		opt(&o)
	}
	if m == nil {
		m = JSONMarshaler[V]{}
	}
	return &Redis[V]{client: client, marshaler: m, opts: o}
}

func (r *Redis[V]) Get(ctx context.Context, key string) (V, error) {
	var zero V

	data, err := r.client.Get(ctx, r.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return zero, ErrNotFound
		}
		return zero, err
	}
	return r.marshaler.Unmarshal(data)
}

func (r *Redis[V]) Set(ctx context.Context, key string, value V, ttl time.Duration) error {
	data, err := r.marshaler.Marshal(value)
	if err != nil {
		return err
	}
	if ttl == 0 {
		ttl = r.opts.defaultTTL
	}
	// Redis treats 0 as "no expiration".
	return r.client.Set(ctx, r.key(key), data, max(ttl, 0)).Err()
}

// updateRetries bounds optimistic retries in Update.
const updateRetries = 10

// Update runs fn inside a WATCH/MULTI transaction and retries when another
// client modifies the key first. It gives up with ErrConflict after
// updateRetries attempts.
func (r *Redis[V]) Update(ctx context.Context, key string, ttl time.Duration, fn func(V) (V, error)) (V, error) {
	var zero, out V
	k := r.key(key)
	if ttl == 0 {
		ttl = r.opts.defaultTTL
	}

	txf := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, k).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return ErrNotFound
			}
			return err
		}
		current, err := r.marshaler.Unmarshal(data)
		if err != nil {
			return err
		}
		next, err := fn(current)
		if err != nil {
			return err
		}
		b, err := r.marshaler.Marshal(next)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, k, b, max(ttl, 0))
			return nil
		})
		if err != nil {
			return err
		}
		out = next
		return nil
	}

	for range updateRetries {
		err := r.client.Watch(ctx, txf, k)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return zero, err
		}
		return out, nil
	}
	return zero, ErrConflict
}

func (r *Redis[V]) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.key(key)).Err()
}

func (r *Redis[V]) Has(ctx context.Context, key string) (bool, error) {
	n, err := r.client.Exists(ctx, r.key(key)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Clear removes the prefixed keys with SCAN, or flushes the database when no
// prefix is configured.
func (r *Redis[V]) Clear(ctx context.Context) error {
	if r.opts.prefix == "" {
		return r.client.FlushDB(ctx).Err()
	}

	iter := r.client.Scan(ctx, 0, r.opts.prefix+":*", 100).Iterator()
	var batch []string
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == 100 {
			if err := r.client.Del(ctx, batch...).Err(); err != nil {
				return err
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(batch) > 0 {
		return r.client.Del(ctx, batch...).Err()
	}
	return nil
}

// Close is a no-op.
func (r *Redis[V]) Close() error {
	return nil
}

func (r *Redis[V]) key(k string) string {
	if r.opts.prefix == "" {
		return k
	}
	return r.opts.prefix + ":" + k
}

var (
	_ Cache[any]   = (*Redis[any])(nil)
	_ Updater[any] = (*Redis[any])(nil)
)
