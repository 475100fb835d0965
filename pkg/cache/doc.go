// Package cache provides a generic key-value Cache with in-memory and Redis
// implementations.
//
// The wizard stores one entry per rendered page, so the in-memory cache is
// enough for a single process while Redis lets several processes share pages.
//
// TTL semantics for Set:
//   - Positive duration: item expires after this duration
//   - Zero: use the cache's configured default TTL (1 hour by default)
//   - Negative: item never expires
//
// # In-Memory Cache
//
//	c := cache.NewMemory[slugsync.Page](
//	    cache.WithDefaultTTL(2 * time.Hour),
//	    cache.WithMaxEntries(100_000),
//	)
//	defer c.Close()
//
// Expired entries are dropped lazily on access and by a background janitor.
// When WithMaxEntries is set, the least recently used entry is evicted first.
//
// # Redis Cache
//
//	client := redis.MustOpen(ctx, os.Getenv("REDIS_URL"))
//	c := cache.NewRedis[slugsync.Page](client, nil, cache.WithPrefix("wizard"))
//
// Values are JSON-encoded unless a custom Marshaler is given.
//
// # Atomic Updates
//
// Both implementations satisfy Updater. Memory runs the update under its lock;
// Redis uses WATCH/MULTI and retries on conflict:
//
//	page, err := c.(cache.Updater[slugsync.Page]).Update(ctx, id, ttl,
//	    func(p slugsync.Page) (slugsync.Page, error) {
//	        p.State = slugsync.Inactive
//	        return p, nil
//	    })
package cache
