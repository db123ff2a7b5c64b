package cache

import (
	"container/list"
	"context"
	"slices"
	"sync"
	"time"
)

type entry struct {
	key       string
	value     []byte
	expiresAt time.Time // zero means no expiry
}

// Memory is a thread-safe in-process byte cache bounded by entry count.
// When full, the least recently used entry is evicted. Entries with a TTL
// are dropped lazily on the first read after they expire.
type Memory struct {
	capacity int
	items    map[string]*list.Element
	order    *list.List
	mu       sync.Mutex
	now      func() time.Time
}

// MemoryOption configures a Memory cache.
type MemoryOption func(*Memory)

// WithNow replaces the clock used for TTL checks.
func WithNow(now func() time.Time) MemoryOption {
	return func(m *Memory) {
		if now != nil {
			m.now = now
		}
	}
}

// NewMemory creates a cache holding at most capacity entries.
// The capacity must be positive, otherwise it panics.
func NewMemory(capacity int, opts ...MemoryOption) *Memory {
	if capacity <= 0 {
		panic("cache: capacity must be positive")
	}
	m := &Memory{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		order:    list.New(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Get returns a copy of the cached value, or nil, nil when the key is
// missing or expired.
func (m *Memory) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	elem, ok := m.items[key]
	if !ok {
		return nil, nil
	}
	e := elem.Value.(*entry)
	if !e.expiresAt.IsZero() && !m.now().Before(e.expiresAt) {
		m.remove(elem)
		return nil, nil
	}
	m.order.MoveToFront(elem)
	return slices.Clone(e.value), nil
}

// Set stores a copy of val. A non-positive ttl keeps the entry until it is
// deleted or evicted.
func (m *Memory) Set(ctx context.Context, key string, val []byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = m.now().Add(ttl)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if elem, ok := m.items[key]; ok {
		e := elem.Value.(*entry)
		e.value = slices.Clone(val)
		e.expiresAt = expiresAt
		m.order.MoveToFront(elem)
		return nil
	}

	m.items[key] = m.order.PushFront(&entry{key: key, value: slices.Clone(val), expiresAt: expiresAt})
	if m.order.Len() > m.capacity {
		m.remove(m.order.Back())
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (m *Memory) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if elem, ok := m.items[key]; ok {
		m.remove(elem)
	}
	return nil
}

// Len reports the number of stored entries, expired ones included until read.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.order.Len()
}

// Must be called with lock held.
func (m *Memory) remove(elem *list.Element) {
	m.order.Remove(elem)
	delete(m.items, elem.Value.(*entry).key)
}
