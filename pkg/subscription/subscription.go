package subscription

import "time"

// Subscription is a user's subscription record.
// ID is zero until the record is persisted; stores assign it.
type Subscription struct {
	ID             int64
	UserID         int64
	Name           string
	Provider       Provider
	ExpirationDate time.Time
	Status         Status
}

// IsPersisted returns true once a store has assigned an identity.
func (s Subscription) IsPersisted() bool {
	return s.ID != 0
}

func (s Subscription) IsActive() bool {
	return s.Status == StatusActive
}

func (s Subscription) IsCanceled() bool {
	return s.Status == StatusCanceled
}

func (s Subscription) IsExpired() bool {
	return s.Status == StatusExpired
}

// CreateRequest is the input accepted by Service.Upsert.
// It is validated and mapped into a new Subscription, never stored as is.
type CreateRequest struct {
	UserID         *int64
	Name           string
	Provider       string
	ExpirationDate time.Time
}
