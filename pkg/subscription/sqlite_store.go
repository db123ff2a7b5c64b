package subscription

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// sqliteTimeLayout keeps instants sortable as text and lossless to the nanosecond.
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteStore persists subscriptions in SQLite through database/sql.
// The schema comes from SQLiteMigrations.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	if db == nil {
		panic("subscription: sqlite db is required")
	}
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) FindAll(ctx context.Context) ([]Subscription, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+selectColumns+` FROM subscriptions ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return collectSQLiteRows(rows)
}

func (s *SQLiteStore) FindByID(ctx context.Context, id int64) (Subscription, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+selectColumns+` FROM subscriptions WHERE id = ?`, id)
	sub, err := scanSQLiteRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Subscription{}, notFound(id)
	}
	return sub, err
}

func (s *SQLiteStore) FindByUserID(ctx context.Context, userID int64) ([]Subscription, error) {
	if userID <= 0 {
		return []Subscription{}, nil
	}
	rows, err := s.db.QueryContext(ctx, `SELECT `+selectColumns+` FROM subscriptions WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	return collectSQLiteRows(rows)
}

func (s *SQLiteStore) Insert(ctx context.Context, sub Subscription) (Subscription, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO subscriptions (user_id, name, provider, expiration_date, status)
		VALUES (?, ?, ?, ?, ?)`,
		sub.UserID, sub.Name, string(sub.Provider), formatSQLiteTime(sub.ExpirationDate), string(sub.Status),
	)
	if err != nil {
		return Subscription{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Subscription{}, errors.Join(ErrFailedToGenerateID, err)
	}
	sub.ID = id
	return sub, nil
}

func (s *SQLiteStore) Update(ctx context.Context, sub Subscription) (Subscription, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE subscriptions
		SET user_id = ?, name = ?, provider = ?, expiration_date = ?, status = ?
		WHERE id = ?`,
		sub.UserID, sub.Name, string(sub.Provider), formatSQLiteTime(sub.ExpirationDate), string(sub.Status), sub.ID,
	)
	if err != nil {
		return Subscription{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return Subscription{}, err
	}
	if n == 0 {
		return Subscription{}, notFound(sub.ID)
	}
	return sub, nil
}

func (s *SQLiteStore) Upsert(ctx context.Context, sub Subscription) (Subscription, error) {
	if sub.ID == 0 {
		return s.Insert(ctx, sub)
	}

	// AUTOINCREMENT tracks explicit ids, so later inserts never reuse this one.
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO subscriptions (id, user_id, name, provider, expiration_date, status)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			user_id = excluded.user_id,
			name = excluded.name,
			provider = excluded.provider,
			expiration_date = excluded.expiration_date,
			status = excluded.status`,
		sub.ID, sub.UserID, sub.Name, string(sub.Provider), formatSQLiteTime(sub.ExpirationDate), string(sub.Status),
	)
	if err != nil {
		return Subscription{}, err
	}
	return sub, nil
}

func (s *SQLiteStore) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM subscriptions WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func formatSQLiteTime(t time.Time) string {
	return t.UTC().Format(sqliteTimeLayout)
}

func scanSQLiteRow(row rowScanner) (Subscription, error) {
	var (
		r       sqlRow
		expires string
	)
	if err := row.Scan(&r.ID, &r.UserID, &r.Name, &r.Provider, &expires, &r.Status); err != nil {
		return Subscription{}, err
	}

	t, err := time.Parse(sqliteTimeLayout, expires)
	if err != nil {
		return Subscription{}, errors.Join(ErrCorruptRow, err)
	}
	r.ExpirationDate = t
	return r.toSubscription()
}

func collectSQLiteRows(rows *sql.Rows) ([]Subscription, error) {
	defer rows.Close()

	out := make([]Subscription, 0)
	for rows.Next() {
		sub, err := scanSQLiteRow(rows)
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
