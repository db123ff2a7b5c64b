package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Storage is a namespaced key-value wrapper over a go-redis client.
// Every key is stored as "<prefix>:<key>".
type Storage struct {
	db     redis.UniversalClient
	prefix string
}

// NewStorage wraps redisClient. The prefix comes from cfg.KeyPrefix.
func NewStorage(redisClient redis.UniversalClient, cfg Config) *Storage {
	return &Storage{
		db:     redisClient,
		prefix: cfg.KeyPrefix,
	}
}

// Get returns nil for empty keys and missing values (redis.Nil becomes nil).
func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}
	val, err := s.db.Get(ctx, s.key(key)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return val, err
}

// Set stores key-value with expiration. Zero duration means no expiration.
func (s *Storage) Set(ctx context.Context, key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}
	return s.db.Set(ctx, s.key(key), val, exp).Err()
}

// Delete removes a key. Empty keys are ignored.
func (s *Storage) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	return s.db.Del(ctx, s.key(key)).Err()
}

// Conn returns the underlying Redis client.
func (s *Storage) Conn() redis.UniversalClient {
	return s.db
}

func (s *Storage) key(k string) string {
	if s.prefix == "" {
		return k
	}
	return s.prefix + ":" + k
}
