// Package redis provides helpers for connecting to Redis and using it as a
// cache in front of the subscription stores.
//
// The package wraps the go-redis client and adds:
//
//   - Connect, which pings with retries using the supplied configuration.
//   - Storage, a namespaced key-value wrapper with context-aware
//     Get/Set/Delete. It satisfies subscription.Cache.
//   - Healthcheck, which pings and writes a short-lived key under the
//     prefix, for the HTTP health endpoint.
//
// Configuration is described by Config, populated from REDIS_* environment
// variables via github.com/caarlos0/env.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	cached := subscription.NewCachedStore(store, redis.NewStorage(client, cfg))
package redis
