package subscription

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/dmitrymomot/subscriptions/pkg/logger"
)

// Cache is a byte-oriented key-value cache. Get returns nil, nil on a miss.
// *redis.Storage from pkg/redis implements it.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// CachedStore decorates a Store with a read-through cache for FindByID.
// Writes go to the underlying store first and then drop the cached entry.
// Cache failures never fail a call; they are logged and the store is used.
type CachedStore struct {
	Store
	cache  Cache
	ttl    time.Duration
	logger *slog.Logger
}

// CachedStoreOption configures a CachedStore.
type CachedStoreOption func(*CachedStore)

// WithCacheTTL sets how long an entry lives. Zero keeps entries until invalidated.
func WithCacheTTL(ttl time.Duration) CachedStoreOption {
	return func(s *CachedStore) {
		s.ttl = ttl
	}
}

func WithCacheLogger(l *slog.Logger) CachedStoreOption {
	return func(s *CachedStore) {
		if l != nil {
			s.logger = l
		}
	}
}

func NewCachedStore(store Store, cache Cache, opts ...CachedStoreOption) *CachedStore {
	if store == nil {
		panic("subscription: Store is required")
	}
	if cache == nil {
		panic("subscription: Cache is required")
	}

	s := &CachedStore{
		Store:  store,
		cache:  cache,
		ttl:    5 * time.Minute,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// cachedSubscription is the JSON shape kept in the cache.
type cachedSubscription struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	Name           string    `json:"name"`
	Provider       Provider  `json:"provider"`
	ExpirationDate time.Time `json:"expiration_date"`
	Status         Status    `json:"status"`
}

func (s *CachedStore) FindByID(ctx context.Context, id int64) (Subscription, error) {
	key := cacheKey(id)

	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.WarnContext(ctx, "subscription cache read failed",
			logger.Component("subscription_cache"),
			logger.SubscriptionID(id),
			logger.Error(err),
		)
	}
	if len(raw) > 0 {
		var c cachedSubscription
		if err := json.Unmarshal(raw, &c); err == nil {
			return Subscription(c), nil
		}
		// Undecodable entries are treated as a miss and overwritten below.
	}

	sub, err := s.Store.FindByID(ctx, id)
	if err != nil {
		return Subscription{}, err
	}

	if data, err := json.Marshal(cachedSubscription(sub)); err == nil {
		if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
			s.logger.WarnContext(ctx, "subscription cache write failed",
				logger.Component("subscription_cache"),
				logger.SubscriptionID(id),
				logger.Error(err),
			)
		}
	}

	return sub, nil
}

func (s *CachedStore) Update(ctx context.Context, sub Subscription) (Subscription, error) {
	updated, err := s.Store.Update(ctx, sub)
	if err != nil {
		return Subscription{}, err
	}
	s.invalidate(ctx, sub.ID)
	return updated, nil
}

func (s *CachedStore) Upsert(ctx context.Context, sub Subscription) (Subscription, error) {
	saved, err := s.Store.Upsert(ctx, sub)
	if err != nil {
		return Subscription{}, err
	}
	s.invalidate(ctx, saved.ID)
	return saved, nil
}

func (s *CachedStore) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.Store.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	s.invalidate(ctx, id)
	return deleted, nil
}

func (s *CachedStore) invalidate(ctx context.Context, id int64) {
	if err := s.cache.Delete(ctx, cacheKey(id)); err != nil {
		s.logger.WarnContext(ctx, "subscription cache invalidation failed",
			logger.Component("subscription_cache"),
			logger.SubscriptionID(id),
			logger.Error(err),
		)
	}
}

func cacheKey(id int64) string {
	return "subscription:" + strconv.FormatInt(id, 10)
}
