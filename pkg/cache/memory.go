package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

type entry[V any] struct {
	expiresAt time.Time // zero = never
	value     V
	key       string
}

func (e *entry[V]) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// Memory is an in-memory LRU cache with per-entry expiration.
// The front of the list holds the most recently used entry.
type Memory[V any] struct {
	items  map[string]*list.Element
	lru    *list.List
	opts   *memoryOptions
	done   chan struct{}
	mu     sync.Mutex
	closed bool
}

// NewMemory creates a new in-memory cache.
func NewMemory[V any](opts ...MemoryOption) *Memory[V] {
	o := defaultMemoryOptions()
	for _, opt := range opts {
		opt(o)
	}

	m := &Memory[V]{
		items: make(map[string]*list.Element),
		lru:   list.New(),
		opts:  o,
		done:  make(chan struct{}),
	}

	if o.cleanupInterval > 0 {
		go m.janitor(o.cleanupInterval)
	}

	return m
}

func (m *Memory[V]) Get(_ context.Context, key string) (V, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var zero V
	elem, ok := m.items[key]
	if !ok {
		return zero, ErrNotFound
	}

	e := elem.Value.(*entry[V])
	if e.expired(m.opts.now()) {
		m.remove(elem)
		return zero, ErrNotFound
	}

	m.lru.MoveToFront(elem)
	return e.value, nil
}

func (m *Memory[V]) Set(_ context.Context, key string, value V, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	expiresAt := expiry(m.opts.now(), ttl, m.opts.defaultTTL)

	if elem, ok := m.items[key]; ok {
		e := elem.Value.(*entry[V])
		e.value = value
		e.expiresAt = expiresAt
		m.lru.MoveToFront(elem)
		return nil
	}

	if m.opts.maxEntries > 0 && len(m.items) >= m.opts.maxEntries {
		if oldest := m.lru.Back(); oldest != nil {
			m.remove(oldest)
		}
	}

	m.items[key] = m.lru.PushFront(&entry[V]{key: key, value: value, expiresAt: expiresAt})
	return nil
}

// Update applies fn to the stored value while holding the cache lock.
func (m *Memory[V]) Update(_ context.Context, key string, ttl time.Duration, fn func(V) (V, error)) (V, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var zero V
	if m.closed {
		return zero, ErrClosed
	}

	elem, ok := m.items[key]
	if !ok {
		return zero, ErrNotFound
	}

	e := elem.Value.(*entry[V])
	now := m.opts.now()
	if e.expired(now) {
		m.remove(elem)
		return zero, ErrNotFound
	}

	next, err := fn(e.value)
	if err != nil {
		return zero, err
	}

	e.value = next
	e.expiresAt = expiry(now, ttl, m.opts.defaultTTL)
	m.lru.MoveToFront(elem)
	return next, nil
}

func (m *Memory[V]) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}
	if elem, ok := m.items[key]; ok {
		m.remove(elem)
	}
	return nil
}

func (m *Memory[V]) Has(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	elem, ok := m.items[key]
	if !ok {
		return false, nil
	}
	if elem.Value.(*entry[V]).expired(m.opts.now()) {
		m.remove(elem)
		return false, nil
	}
	return true, nil
}

func (m *Memory[V]) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}
	m.items = make(map[string]*list.Element)
	m.lru.Init()
	return nil
}

// Len returns the number of stored entries, including expired ones not yet
// collected.
func (m *Memory[V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

// Close stops the janitor. Close is idempotent.
func (m *Memory[V]) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.closed {
		m.closed = true
		close(m.done)
	}
	return nil
}

func (m *Memory[V]) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			m.collect()
		}
	}
}

// collect drops expired entries.
func (m *Memory[V]) collect() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.opts.now()
	for elem := m.lru.Back(); elem != nil; {
		prev := elem.Prev()
		if elem.Value.(*entry[V]).expired(now) {
			m.remove(elem)
		}
		elem = prev
	}
}

// remove deletes elem. Caller must hold the mutex.
func (m *Memory[V]) remove(elem *list.Element) {
	m.lru.Remove(elem)
	delete(m.items, elem.Value.(*entry[V]).key)
}

var (
	_ Cache[any]   = (*Memory[any])(nil)
	_ Updater[any] = (*Memory[any])(nil)
)
