package subscriptions

import (
	"time"

	"github.com/dmitrymomot/subscriptions/pkg/subscription"
)

// CreateRequest is the body of POST /subscriptions.
// Absent fields decode to their zero values and are reported by validation.
type CreateRequest struct {
	UserID         *int64    `json:"userId"`
	Name           string    `json:"name"`
	Provider       string    `json:"provider"`
	ExpirationDate time.Time `json:"expirationDate"`
}

func (r CreateRequest) toDomain() subscription.CreateRequest {
	return subscription.CreateRequest{
		UserID:         r.UserID,
		Name:           r.Name,
		Provider:       r.Provider,
		ExpirationDate: r.ExpirationDate,
	}
}

// idRequest accepts any int64. Ids that were never assigned, zero and
// negatives included, resolve to not found in the service.
type idRequest struct {
	ID int64 `path:"id"`
}

// userRequest accepts any int64. A user id below 1 lists nothing.
type userRequest struct {
	UserID int64 `path:"userID"`
}
