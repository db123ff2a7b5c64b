// Package cache provides Memory, an in-process byte cache with LRU eviction
// and per-entry TTL.
//
// Memory has the same Get/Set/Delete shape as redis.Storage, so either can
// back subscription.CachedStore:
//
//	store := subscription.NewCachedStore(
//		subscription.NewPostgresStore(pool),
//		cache.NewMemory(1024),
//		subscription.WithCacheTTL(5*time.Minute),
//	)
//
// A miss is reported as a nil value with a nil error.
package cache
