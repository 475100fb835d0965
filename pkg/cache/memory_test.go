package cache_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/orgwizard/pkg/cache"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	now atomic.Int64
}

func newFakeClock() *fakeClock {
	c := &fakeClock{}
	c.now.Store(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC).UnixNano())
	return c
}

func (c *fakeClock) Now() time.Time          { return time.Unix(0, c.now.Load()).UTC() }
func (c *fakeClock) Advance(d time.Duration) { c.now.Add(int64(d)) }

func newMemory[V any](t *testing.T, clock *fakeClock, opts ...cache.MemoryOption) *cache.Memory[V] {
	t.Helper()
	opts = append([]cache.MemoryOption{
		cache.WithCleanupInterval(0),
		cache.WithMemoryClock(clock.Now),
	}, opts...)
	c := cache.NewMemory[V](opts...)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestMemory_Get(t *testing.T) {
	t.Parallel()

	t.Run("returns ErrNotFound for missing key", func(t *testing.T) {
		t.Parallel()

		c := newMemory[string](t, newFakeClock())
		_, err := c.Get(context.Background(), "missing")
		require.ErrorIs(t, err, cache.ErrNotFound)
	})

	t.Run("returns stored value", func(t *testing.T) {
		t.Parallel()

		c := newMemory[int](t, newFakeClock())
		ctx := context.Background()
		require.NoError(t, c.Set(ctx, "key", 42, time.Minute))

		val, err := c.Get(ctx, "key")
		require.NoError(t, err)
		require.Equal(t, 42, val)
	})

	t.Run("returns ErrNotFound for expired key", func(t *testing.T) {
		t.Parallel()

		clock := newFakeClock()
		c := newMemory[string](t, clock)
		ctx := context.Background()
		require.NoError(t, c.Set(ctx, "key", "value", time.Minute))

		clock.Advance(time.Minute + time.Second)

		_, err := c.Get(ctx, "key")
		require.ErrorIs(t, err, cache.ErrNotFound)
		require.Equal(t, 0, c.Len())
	})
}

func TestMemory_SetTTL(t *testing.T) {
	t.Parallel()

	t.Run("zero TTL uses default", func(t *testing.T) {
		t.Parallel()

		clock := newFakeClock()
		c := newMemory[string](t, clock, cache.WithDefaultTTL(10*time.Minute))
		ctx := context.Background()
		require.NoError(t, c.Set(ctx, "key", "value", 0))

		clock.Advance(9 * time.Minute)
		has, err := c.Has(ctx, "key")
		require.NoError(t, err)
		require.True(t, has)

		clock.Advance(2 * time.Minute)
		has, err = c.Has(ctx, "key")
		require.NoError(t, err)
		require.False(t, has)
	})

	t.Run("negative TTL never expires", func(t *testing.T) {
		t.Parallel()

		clock := newFakeClock()
		c := newMemory[string](t, clock)
		ctx := context.Background()
		require.NoError(t, c.Set(ctx, "key", "value", -1))

		clock.Advance(24 * 365 * time.Hour)

		val, err := c.Get(ctx, "key")
		require.NoError(t, err)
		require.Equal(t, "value", val)
	})

	t.Run("overwrite refreshes expiration", func(t *testing.T) {
		t.Parallel()

		clock := newFakeClock()
		c := newMemory[string](t, clock)
		ctx := context.Background()
		require.NoError(t, c.Set(ctx, "key", "v1", time.Minute))

		clock.Advance(50 * time.Second)
		require.NoError(t, c.Set(ctx, "key", "v2", time.Minute))

		clock.Advance(50 * time.Second)
		val, err := c.Get(ctx, "key")
		require.NoError(t, err)
		require.Equal(t, "v2", val)
	})
}

func TestMemory_MaxEntries(t *testing.T) {
	t.Parallel()

	c := newMemory[string](t, newFakeClock(), cache.WithMaxEntries(2))
	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "a", "1", time.Minute))
	require.NoError(t, c.Set(ctx, "b", "2", time.Minute))

	// Touch "a" so "b" becomes least recently used.
	_, err := c.Get(ctx, "a")
	require.NoError(t, err)

	require.NoError(t, c.Set(ctx, "c", "3", time.Minute))

	has, err := c.Has(ctx, "a")
	require.NoError(t, err)
	require.True(t, has)

	has, err = c.Has(ctx, "b")
	require.NoError(t, err)
	require.False(t, has)

	require.Equal(t, 2, c.Len())
}

func TestMemory_DeleteAndClear(t *testing.T) {
	t.Parallel()

	c := newMemory[string](t, newFakeClock())
	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "a", "1", time.Minute))
	require.NoError(t, c.Set(ctx, "b", "2", time.Minute))

	require.NoError(t, c.Delete(ctx, "a"))
	require.NoError(t, c.Delete(ctx, "missing"))

	_, err := c.Get(ctx, "a")
	require.ErrorIs(t, err, cache.ErrNotFound)

	require.NoError(t, c.Clear(ctx))
	require.Equal(t, 0, c.Len())
}

func TestMemory_Close(t *testing.T) {
	t.Parallel()

	c := cache.NewMemory[string]()
	require.NoError(t, c.Close())
	require.NoError(t, c.Close())

	ctx := context.Background()
	require.ErrorIs(t, c.Set(ctx, "k", "v", time.Minute), cache.ErrClosed)
	require.ErrorIs(t, c.Delete(ctx, "k"), cache.ErrClosed)
	require.ErrorIs(t, c.Clear(ctx), cache.ErrClosed)
}

func TestMemory_Janitor(t *testing.T) {
	t.Parallel()

	c := cache.NewMemory[string](cache.WithCleanupInterval(5 * time.Millisecond))
	defer c.Close()

	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "key", "value", time.Millisecond))

	require.Eventually(t, func() bool {
		return c.Len() == 0
	}, time.Second, 5*time.Millisecond)
}

func TestMemory_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	c := cache.NewMemory[int](cache.WithMaxEntries(50))
	defer c.Close()

	ctx := context.Background()
	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := range 100 {
				key := string(rune('a' + (n+j)%26))
				_ = c.Set(ctx, key, j, time.Minute)
				_, _ = c.Get(ctx, key)
				_, _ = c.Has(ctx, key)
			}
		}(i)
	}
	wg.Wait()

	require.LessOrEqual(t, c.Len(), 50)
}

func TestMemory_Update(t *testing.T) {
	t.Parallel()

	t.Run("returns ErrNotFound for missing key", func(t *testing.T) {
		t.Parallel()

		c := newMemory[int](t, newFakeClock())
		called := false
		_, err := c.Update(context.Background(), "missing", time.Minute, func(v int) (int, error) {
			called = true
			return v, nil
		})
		require.ErrorIs(t, err, cache.ErrNotFound)
		require.False(t, called)
	})

	t.Run("returns ErrNotFound for expired key", func(t *testing.T) {
		t.Parallel()

		clock := newFakeClock()
		c := newMemory[int](t, clock)
		ctx := context.Background()
		require.NoError(t, c.Set(ctx, "key", 1, time.Minute))

		clock.Advance(2 * time.Minute)
		_, err := c.Update(ctx, "key", time.Minute, func(v int) (int, error) { return v + 1, nil })
		require.ErrorIs(t, err, cache.ErrNotFound)
		require.Equal(t, 0, c.Len())
	})

	t.Run("stores the new value and refreshes TTL", func(t *testing.T) {
		t.Parallel()

		clock := newFakeClock()
		c := newMemory[int](t, clock)
		ctx := context.Background()
		require.NoError(t, c.Set(ctx, "key", 1, time.Minute))

		clock.Advance(50 * time.Second)
		got, err := c.Update(ctx, "key", time.Minute, func(v int) (int, error) { return v + 1, nil })
		require.NoError(t, err)
		require.Equal(t, 2, got)

		clock.Advance(50 * time.Second)
		val, err := c.Get(ctx, "key")
		require.NoError(t, err)
		require.Equal(t, 2, val)
	})

	t.Run("fn error leaves value untouched", func(t *testing.T) {
		t.Parallel()

		c := newMemory[int](t, newFakeClock())
		ctx := context.Background()
		require.NoError(t, c.Set(ctx, "key", 1, time.Minute))

		boom := errors.New("boom")
		_, err := c.Update(ctx, "key", time.Minute, func(int) (int, error) { return 99, boom })
		require.ErrorIs(t, err, boom)

		val, err := c.Get(ctx, "key")
		require.NoError(t, err)
		require.Equal(t, 1, val)
	})

	t.Run("closed cache", func(t *testing.T) {
		t.Parallel()

		c := newMemory[int](t, newFakeClock())
		require.NoError(t, c.Close())
		_, err := c.Update(context.Background(), "key", time.Minute, func(v int) (int, error) { return v, nil })
		require.ErrorIs(t, err, cache.ErrClosed)
	})

	t.Run("concurrent updates are not lost", func(t *testing.T) {
		t.Parallel()

		c := newMemory[int](t, newFakeClock())
		ctx := context.Background()
		require.NoError(t, c.Set(ctx, "counter", 0, time.Minute))

		var wg sync.WaitGroup
		for range 100 {
			wg.Go(func() {
				_, err := c.Update(ctx, "counter", time.Minute, func(v int) (int, error) { return v + 1, nil })
				require.NoError(t, err)
			})
		}
		wg.Wait()

		val, err := c.Get(ctx, "counter")
		require.NoError(t, err)
		require.Equal(t, 100, val)
	})
}

func TestJSONMarshaler(t *testing.T) {
	t.Parallel()

	type item struct {
		Name string `json:"name"`
	}

	m := cache.JSONMarshaler[item]{}
	data, err := m.Marshal(item{Name: "pycon"})
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"pycon"}`, string(data))

	_, err = m.Unmarshal([]byte("{"))
	require.ErrorIs(t, err, cache.ErrUnmarshal)

	_, err = cache.JSONMarshaler[chan int]{}.Marshal(make(chan int))
	require.ErrorIs(t, err, cache.ErrMarshal)
}
