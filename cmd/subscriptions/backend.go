package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrymomot/subscriptions/pkg/cache"
	"github.com/dmitrymomot/subscriptions/pkg/config"
	"github.com/dmitrymomot/subscriptions/pkg/httpserver"
	"github.com/dmitrymomot/subscriptions/pkg/logger"
	"github.com/dmitrymomot/subscriptions/pkg/mongo"
	"github.com/dmitrymomot/subscriptions/pkg/pg"
	"github.com/dmitrymomot/subscriptions/pkg/redis"
	"github.com/dmitrymomot/subscriptions/pkg/sqlite"
	"github.com/dmitrymomot/subscriptions/pkg/subscription"
)

// backend is an opened store plus everything needed to check and release it.
type backend struct {
	store   subscription.Store
	checks  []httpserver.Check
	closers []func() error
}

func (b *backend) Close() error {
	var errs []error
	for i := len(b.closers) - 1; i >= 0; i-- {
		errs = append(errs, b.closers[i]())
	}
	return errors.Join(errs...)
}

// openBackend connects to the configured driver. SQLite databases are always
// migrated on open; PostgreSQL only when migrate is set.
func (a *app) openBackend(ctx context.Context, migrate bool) (*backend, error) {
	b := &backend{}
	log := a.log.With(logger.Component("storage"), logger.Driver(a.cfg.Driver))

	switch a.cfg.Driver {
	case DriverMemory:
		b.store = subscription.NewMemoryStore()

	case DriverPostgres:
		var cfg pg.Config
		if err := config.Load(&cfg); err != nil {
			return nil, err
		}
		pool, err := pg.Connect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, func() error { pool.Close(); return nil })
		if migrate {
			if err := pg.Migrate(ctx, pool, subscription.PostgresMigrations(), cfg, log); err != nil {
				_ = b.Close()
				return nil, err
			}
		}
		b.store = subscription.NewPostgresStore(pool)
		b.checks = append(b.checks, httpserver.Check{Name: DriverPostgres, Fn: pg.Healthcheck(pool)})

	case DriverSQLite:
		var cfg sqlite.Config
		if err := config.Load(&cfg); err != nil {
			return nil, err
		}
		db, err := sqlite.Open(ctx, cfg)
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, db.Close)
		if err := sqlite.Migrate(ctx, db, subscription.SQLiteMigrations(), cfg, log); err != nil {
			_ = b.Close()
			return nil, err
		}
		b.store = subscription.NewSQLiteStore(db)
		b.checks = append(b.checks, httpserver.Check{Name: DriverSQLite, Fn: sqlite.Healthcheck(db)})

	case DriverMongo:
		var cfg mongo.Config
		if err := config.Load(&cfg); err != nil {
			return nil, err
		}
		client, err := mongo.New(ctx, cfg)
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, func() error { return client.Disconnect(context.Background()) })
		store := subscription.NewMongoStore(client.Database(cfg.Database))
		if err := store.EnsureIndexes(ctx); err != nil {
			_ = b.Close()
			return nil, err
		}
		b.store = store
		b.checks = append(b.checks, httpserver.Check{Name: DriverMongo, Fn: mongo.Healthcheck(client)})

	default:
		return nil, ErrUnknownDriver
	}

	if a.cfg.CacheEnabled {
		if err := a.attachCache(ctx, b); err != nil {
			_ = b.Close()
			return nil, err
		}
	}

	log.DebugContext(ctx, "storage ready")
	return b, nil
}

func (a *app) attachCache(ctx context.Context, b *backend) error {
	var c subscription.Cache

	switch a.cfg.CacheDriver {
	case CacheMemory:
		size := a.cfg.CacheSize
		if size <= 0 {
			size = 1024
		}
		c = cache.NewMemory(size)

	case CacheRedis:
		var cfg redis.Config
		if err := config.Load(&cfg); err != nil {
			return err
		}
		client, err := redis.Connect(ctx, cfg)
		if err != nil {
			return err
		}
		b.closers = append(b.closers, client.Close)
		storage := redis.NewStorage(client, cfg)
		b.checks = append(b.checks, httpserver.Check{Name: CacheRedis, Fn: redis.Healthcheck(storage)})
		c = storage

	default:
		return fmt.Errorf("%w: %q", ErrUnknownCacheDriver, a.cfg.CacheDriver)
	}

	b.store = subscription.NewCachedStore(b.store, c,
		subscription.WithCacheTTL(a.cfg.CacheTTL),
		subscription.WithCacheLogger(a.log),
	)
	return nil
}
