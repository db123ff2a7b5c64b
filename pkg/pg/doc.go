// Package pg bootstraps PostgreSQL access on top of pgx/v5.
//
// Config is populated from PG_* environment variables. Connect opens a
// *pgxpool.Pool and retries while the database comes up. Migrate runs goose
// migrations from any fs.FS (usually an embedded directory) through the same
// pool. Healthcheck returns a check suitable for HTTP health endpoints.
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, subscription.PostgresMigrations(), cfg, log); err != nil {
//		return err
//	}
//
// IsNotFoundError keeps pgx.ErrNoRows out of business code.
package pg
