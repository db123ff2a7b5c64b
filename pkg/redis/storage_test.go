package redis_test

import (
	"context"
	"os"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/subscriptions/pkg/redis"
)

func TestConnectValidation(t *testing.T) {
	t.Parallel()

	t.Run("empty url", func(t *testing.T) {
		t.Parallel()

		_, err := redis.Connect(context.Background(), redis.Config{})
		require.ErrorIs(t, err, redis.ErrEmptyConnectionURL)
	})

	t.Run("malformed url", func(t *testing.T) {
		t.Parallel()

		_, err := redis.Connect(context.Background(), redis.Config{ConnectionURL: "http://localhost"})
		require.ErrorIs(t, err, redis.ErrInvalidConnectionURL)
	})
}

func TestHealthcheckUnreachable(t *testing.T) {
	t.Parallel()

	client := goredis.NewClient(&goredis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	err := redis.Healthcheck(redis.NewStorage(client, redis.Config{KeyPrefix: "x"}))(context.Background())
	require.ErrorIs(t, err, redis.ErrCacheUnavailable)
	assert.Contains(t, err.Error(), "ping")
}

// TestStorage needs a live server; set REDIS_URL to run it.
func TestStorage(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL is not set")
	}

	cfg := redis.Config{
		ConnectionURL:  url,
		RetryAttempts:  1,
		ConnectTimeout: 5 * time.Second,
		KeyPrefix:      "subscriptions-test",
	}
	client, err := redis.Connect(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	storage := redis.NewStorage(client, cfg)
	ctx := context.Background()

	t.Run("healthcheck writes under the prefix", func(t *testing.T) {
		require.NoError(t, redis.Healthcheck(storage)(ctx))

		ttl, err := client.TTL(ctx, "subscriptions-test:healthcheck").Result()
		require.NoError(t, err)
		assert.Positive(t, ttl)
	})

	t.Run("missing key", func(t *testing.T) {
		val, err := storage.Get(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, val)
	})

	t.Run("set get delete", func(t *testing.T) {
		require.NoError(t, storage.Set(ctx, "k", []byte("v"), time.Minute))

		raw, err := client.Get(ctx, "subscriptions-test:k").Result()
		require.NoError(t, err)
		assert.Equal(t, "v", raw)

		val, err := storage.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("v"), val)

		require.NoError(t, storage.Delete(ctx, "k"))
		val, err = storage.Get(ctx, "k")
		require.NoError(t, err)
		assert.Nil(t, val)
	})

	t.Run("empty key is ignored", func(t *testing.T) {
		assert.NoError(t, storage.Set(ctx, "", []byte("v"), 0))
		assert.NoError(t, storage.Delete(ctx, ""))
	})
}
