package subscription

import (
	"cmp"
	"context"
	"slices"
	"sync"
)

// MemoryStore keeps subscriptions in a map. Useful for tests and the
// "memory" storage driver.
type MemoryStore struct {
	mu     sync.RWMutex
	rows   map[int64]Subscription
	lastID int64
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rows: make(map[int64]Subscription)}
}

func (s *MemoryStore) FindAll(ctx context.Context) ([]Subscription, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sorted(func(Subscription) bool { return true }), nil
}

func (s *MemoryStore) FindByID(ctx context.Context, id int64) (Subscription, error) {
	if err := ctx.Err(); err != nil {
		return Subscription{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	sub, ok := s.rows[id]
	if !ok {
		return Subscription{}, notFound(id)
	}
	return sub, nil
}

func (s *MemoryStore) FindByUserID(ctx context.Context, userID int64) ([]Subscription, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if userID <= 0 {
		return []Subscription{}, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sorted(func(sub Subscription) bool { return sub.UserID == userID }), nil
}

func (s *MemoryStore) Insert(ctx context.Context, sub Subscription) (Subscription, error) {
	if err := ctx.Err(); err != nil {
		return Subscription{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID++
	sub.ID = s.lastID
	s.rows[sub.ID] = sub
	return sub, nil
}

func (s *MemoryStore) Update(ctx context.Context, sub Subscription) (Subscription, error) {
	if err := ctx.Err(); err != nil {
		return Subscription{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[sub.ID]; !ok {
		return Subscription{}, notFound(sub.ID)
	}
	s.rows[sub.ID] = sub
	return sub, nil
}

func (s *MemoryStore) Upsert(ctx context.Context, sub Subscription) (Subscription, error) {
	if sub.ID == 0 {
		return s.Insert(ctx, sub)
	}
	if err := ctx.Err(); err != nil {
		return Subscription{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.rows[sub.ID] = sub
	// Keep the counter ahead of explicitly chosen ids.
	s.lastID = max(s.lastID, sub.ID)
	return sub, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[id]; !ok {
		return false, nil
	}
	delete(s.rows, id)
	return true, nil
}

// sorted must be called with the lock held.
func (s *MemoryStore) sorted(keep func(Subscription) bool) []Subscription {
	out := make([]Subscription, 0, len(s.rows))
	for _, sub := range s.rows {
		if keep(sub) {
			out = append(out, sub)
		}
	}
	slices.SortFunc(out, func(a, b Subscription) int { return cmp.Compare(a.ID, b.ID) })
	return out
}
