package subscription_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/subscriptions/pkg/subscription"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) FindAll(ctx context.Context) ([]subscription.Subscription, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]subscription.Subscription), args.Error(1)
}

func (m *mockStore) FindByID(ctx context.Context, id int64) (subscription.Subscription, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(subscription.Subscription), args.Error(1)
}

func (m *mockStore) FindByUserID(ctx context.Context, userID int64) ([]subscription.Subscription, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]subscription.Subscription), args.Error(1)
}

func (m *mockStore) Insert(ctx context.Context, sub subscription.Subscription) (subscription.Subscription, error) {
	args := m.Called(ctx, sub)
	return args.Get(0).(subscription.Subscription), args.Error(1)
}

func (m *mockStore) Update(ctx context.Context, sub subscription.Subscription) (subscription.Subscription, error) {
	args := m.Called(ctx, sub)
	return args.Get(0).(subscription.Subscription), args.Error(1)
}

func (m *mockStore) Upsert(ctx context.Context, sub subscription.Subscription) (subscription.Subscription, error) {
	args := m.Called(ctx, sub)
	return args.Get(0).(subscription.Subscription), args.Error(1)
}

func (m *mockStore) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// Test helpers

// maxInstant is the latest expiration accepted, at a precision every store keeps.
var maxInstant = subscription.MaxExpirationDate.Truncate(time.Millisecond)

func int64Ptr(v int64) *int64 {
	return &v
}

func validRequest() subscription.CreateRequest {
	return subscription.CreateRequest{
		UserID:         int64Ptr(1),
		Name:           "Ivan",
		Provider:       "GOOGLE",
		ExpirationDate: maxInstant,
	}
}

func activeSubscription(id int64) subscription.Subscription {
	return subscription.Subscription{
		ID:             id,
		UserID:         1,
		Name:           "Ivan",
		Provider:       subscription.ProviderGoogle,
		ExpirationDate: maxInstant,
		Status:         subscription.StatusActive,
	}
}
