package subscription

import (
	"errors"
	"time"
)

// rowScanner is implemented by pgx.Row, pgx.Rows, *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

const selectColumns = `id, user_id, name, provider, expiration_date, status`

// sqlRow holds one subscriptions row while it is being decoded.
// Enum columns are scanned as text and checked on the way in.
type sqlRow struct {
	ID             int64
	UserID         int64
	Name           string
	Provider       string
	ExpirationDate time.Time
	Status         string
}

func (r sqlRow) toSubscription() (Subscription, error) {
	provider, err := ParseProvider(r.Provider)
	if err != nil {
		return Subscription{}, errors.Join(ErrCorruptRow, err)
	}
	status, err := parseStatus(r.Status)
	if err != nil {
		return Subscription{}, errors.Join(ErrCorruptRow, err)
	}

	return Subscription{
		ID:             r.ID,
		UserID:         r.UserID,
		Name:           r.Name,
		Provider:       provider,
		ExpirationDate: r.ExpirationDate.UTC(),
		Status:         status,
	}, nil
}
