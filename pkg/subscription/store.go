package subscription

import "context"

// Store defines subscription persistence.
// Every method returns copies; callers never share a handle with the store.
type Store interface {
	// FindAll returns every subscription. Order is unspecified.
	FindAll(ctx context.Context) ([]Subscription, error)

	// FindByID returns ErrSubscriptionNotFound if no row has the id.
	FindByID(ctx context.Context, id int64) (Subscription, error)

	// FindByUserID returns an empty, non-nil slice for userID <= 0 or an unknown user.
	FindByUserID(ctx context.Context, userID int64) ([]Subscription, error)

	// Insert stores a new row and returns it with the assigned id.
	// Any id already set on the argument is ignored.
	Insert(ctx context.Context, sub Subscription) (Subscription, error)

	// Update replaces the row matching sub.ID.
	// Returns ErrSubscriptionNotFound if the row does not exist.
	Update(ctx context.Context, sub Subscription) (Subscription, error)

	// Upsert inserts when sub.ID is zero. Otherwise it fully replaces the row
	// with that id, creating it under the given id if it is missing.
	Upsert(ctx context.Context, sub Subscription) (Subscription, error)

	// Delete reports whether a row existed and was removed.
	Delete(ctx context.Context, id int64) (bool, error)
}
