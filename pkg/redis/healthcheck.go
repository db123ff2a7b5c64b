package redis

import (
	"context"
	"fmt"
	"time"
)

const healthcheckKey = "healthcheck"

// Healthcheck returns a check for the cache behind s. Besides PING it writes
// a short-lived key under the storage prefix, so a read-only replica fails
// the check instead of silently dropping cache writes.
func Healthcheck(s *Storage) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := s.db.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("%w: ping: %w", ErrCacheUnavailable, err)
		}
		if err := s.db.Set(ctx, s.key(healthcheckKey), "ok", 10*time.Second).Err(); err != nil {
			return fmt.Errorf("%w: write %q: %w", ErrCacheUnavailable, s.key(healthcheckKey), err)
		}
		return nil
	}
}
