package subscriptions

import (
	"time"

	"github.com/dmitrymomot/subscriptions/pkg/subscription"
)

// SubscriptionResponse is the wire form of subscription.Subscription.
type SubscriptionResponse struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"userId"`
	Name           string    `json:"name"`
	Provider       string    `json:"provider"`
	ExpirationDate time.Time `json:"expirationDate"`
	Status         string    `json:"status"`
}

func toResponse(sub subscription.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		ID:             sub.ID,
		UserID:         sub.UserID,
		Name:           sub.Name,
		Provider:       sub.Provider.String(),
		ExpirationDate: sub.ExpirationDate,
		Status:         sub.Status.String(),
	}
}

func toResponseList(subs []subscription.Subscription) []SubscriptionResponse {
	out := make([]SubscriptionResponse, 0, len(subs))
	for _, sub := range subs {
		out = append(out, toResponse(sub))
	}
	return out
}
