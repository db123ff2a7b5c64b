package subscription

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/subscriptions/pkg/pg"
)

// PostgresStore persists subscriptions in PostgreSQL through a pgx pool.
// The schema comes from PostgresMigrations.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	if pool == nil {
		panic("subscription: pgx pool is required")
	}
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) FindAll(ctx context.Context) ([]Subscription, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+selectColumns+` FROM subscriptions ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return collectPgRows(rows)
}

func (s *PostgresStore) FindByID(ctx context.Context, id int64) (Subscription, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+selectColumns+` FROM subscriptions WHERE id = $1`, id)
	sub, err := scanPgRow(row)
	if pg.IsNotFoundError(err) {
		return Subscription{}, notFound(id)
	}
	return sub, err
}

func (s *PostgresStore) FindByUserID(ctx context.Context, userID int64) ([]Subscription, error) {
	if userID <= 0 {
		return []Subscription{}, nil
	}
	rows, err := s.pool.Query(ctx, `SELECT `+selectColumns+` FROM subscriptions WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	return collectPgRows(rows)
}

func (s *PostgresStore) Insert(ctx context.Context, sub Subscription) (Subscription, error) {
	err := s.pool.QueryRow(ctx, `
		INSERT INTO subscriptions (user_id, name, provider, expiration_date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		sub.UserID, sub.Name, string(sub.Provider), sub.ExpirationDate, string(sub.Status),
	).Scan(&sub.ID)
	if err != nil {
		return Subscription{}, errors.Join(ErrFailedToGenerateID, err)
	}
	return sub, nil
}

func (s *PostgresStore) Update(ctx context.Context, sub Subscription) (Subscription, error) {
	tag, err := s.pool.Exec(ctx, `
		UPDATE subscriptions
		SET user_id = $2, name = $3, provider = $4, expiration_date = $5, status = $6
		WHERE id = $1`,
		sub.ID, sub.UserID, sub.Name, string(sub.Provider), sub.ExpirationDate, string(sub.Status),
	)
	if err != nil {
		return Subscription{}, err
	}
	if tag.RowsAffected() == 0 {
		return Subscription{}, notFound(sub.ID)
	}
	return sub, nil
}

func (s *PostgresStore) Upsert(ctx context.Context, sub Subscription) (Subscription, error) {
	if sub.ID == 0 {
		return s.Insert(ctx, sub)
	}

	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
			INSERT INTO subscriptions (id, user_id, name, provider, expiration_date, status)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (id) DO UPDATE SET
				user_id = EXCLUDED.user_id,
				name = EXCLUDED.name,
				provider = EXCLUDED.provider,
				expiration_date = EXCLUDED.expiration_date,
				status = EXCLUDED.status`,
			sub.ID, sub.UserID, sub.Name, string(sub.Provider), sub.ExpirationDate, string(sub.Status),
		); err != nil {
			return err
		}
		// An explicit id does not advance the serial sequence; move it past the largest id.
		_, err := tx.Exec(ctx, `SELECT setval(pg_get_serial_sequence('subscriptions', 'id'), GREATEST($1::BIGINT, (SELECT COALESCE(MAX(id), 1) FROM subscriptions)))`, sub.ID)
		return err
	})
	if err != nil {
		return Subscription{}, err
	}
	return sub, nil
}

func (s *PostgresStore) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM subscriptions WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanPgRow(row rowScanner) (Subscription, error) {
	var r sqlRow
	if err := row.Scan(&r.ID, &r.UserID, &r.Name, &r.Provider, &r.ExpirationDate, &r.Status); err != nil {
		return Subscription{}, err
	}
	return r.toSubscription()
}

func collectPgRows(rows pgx.Rows) ([]Subscription, error) {
	defer rows.Close()

	out := make([]Subscription, 0)
	for rows.Next() {
		sub, err := scanPgRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
