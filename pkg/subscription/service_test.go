package subscription_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/subscriptions/pkg/subscription"
	"github.com/dmitrymomot/subscriptions/pkg/validator"
)

func TestNewService(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		subscription.NewService(nil)
	})
	assert.NotPanics(t, func() {
		subscription.NewService(subscription.NewMemoryStore(),
			subscription.WithValidator(nil),
			subscription.WithMapper(nil),
			subscription.WithClock(nil),
			subscription.WithLogger(nil),
		)
	})
}

func TestService_Upsert(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("invalid request never reaches the store", func(t *testing.T) {
		t.Parallel()

		store := &mockStore{}
		svc := subscription.NewService(store)

		sub, err := svc.Upsert(ctx, subscription.CreateRequest{})
		require.Error(t, err)
		assert.Equal(t, subscription.Subscription{}, sub)

		verrs := validator.ExtractValidationErrors(err)
		require.NotNil(t, verrs)
		assert.Equal(t, []int{100, 101, 102, 103}, verrs.Codes())

		store.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
		assert.Empty(t, store.Calls)
	})

	t.Run("single invalid field", func(t *testing.T) {
		t.Parallel()

		store := &mockStore{}
		svc := subscription.NewService(store)

		req := validRequest()
		req.Provider = "PAYPAL"

		_, err := svc.Upsert(ctx, req)
		require.True(t, validator.IsValidationError(err))
		assert.Equal(t, []int{102}, validator.ExtractValidationErrors(err).Codes())
		assert.Empty(t, store.Calls)
	})

	t.Run("valid request is mapped and stored", func(t *testing.T) {
		t.Parallel()

		store := &mockStore{}
		mapped := activeSubscription(0)
		store.On("Upsert", ctx, mapped).Return(activeSubscription(10), nil).Once()

		svc := subscription.NewService(store)
		sub, err := svc.Upsert(ctx, validRequest())
		require.NoError(t, err)
		assert.Equal(t, int64(10), sub.ID)
		assert.Equal(t, subscription.StatusActive, sub.Status)
		store.AssertExpectations(t)
	})

	t.Run("store failure passes through unchanged", func(t *testing.T) {
		t.Parallel()

		storeErr := errors.New("connection reset")
		store := &mockStore{}
		store.On("Upsert", ctx, mock.Anything).Return(subscription.Subscription{}, storeErr).Once()

		svc := subscription.NewService(store)
		_, err := svc.Upsert(ctx, validRequest())
		assert.Same(t, storeErr, err)
	})

	t.Run("distinct ids for repeated upserts", func(t *testing.T) {
		t.Parallel()

		svc := subscription.NewService(subscription.NewMemoryStore())

		first, err := svc.Upsert(ctx, validRequest())
		require.NoError(t, err)
		second, err := svc.Upsert(ctx, validRequest())
		require.NoError(t, err)

		assert.NotZero(t, first.ID)
		assert.NotZero(t, second.ID)
		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("custom validator and mapper", func(t *testing.T) {
		t.Parallel()

		rejectAll := validatorFunc(func(subscription.CreateRequest) validator.ValidationErrors {
			return validator.ValidationErrors{{Code: 999, Field: "x", Message: "nope"}}
		})
		svc := subscription.NewService(subscription.NewMemoryStore(), subscription.WithValidator(rejectAll))

		_, err := svc.Upsert(ctx, validRequest())
		assert.Equal(t, []int{999}, validator.ExtractValidationErrors(err).Codes())

		mapErr := errors.New("mapper failed")
		svc = subscription.NewService(subscription.NewMemoryStore(),
			subscription.WithMapper(mapperFunc(func(subscription.CreateRequest) (subscription.Subscription, error) {
				return subscription.Subscription{}, mapErr
			})),
		)
		_, err = svc.Upsert(ctx, validRequest())
		assert.ErrorIs(t, err, mapErr)
	})
}

func TestService_Cancel(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("unknown id", func(t *testing.T) {
		t.Parallel()

		store := &mockStore{}
		store.On("FindByID", ctx, int64(404)).
			Return(subscription.Subscription{}, fmt.Errorf("%w: id 404", subscription.ErrSubscriptionNotFound)).Once()

		err := subscription.NewService(store).Cancel(ctx, 404)
		require.ErrorIs(t, err, subscription.ErrSubscriptionNotFound)
		store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	for _, status := range []subscription.Status{subscription.StatusCanceled, subscription.StatusExpired} {
		t.Run("rejects "+status.String(), func(t *testing.T) {
			t.Parallel()

			sub := activeSubscription(5)
			sub.Status = status

			store := &mockStore{}
			store.On("FindByID", ctx, int64(5)).Return(sub, nil).Once()

			err := subscription.NewService(store).Cancel(ctx, 5)
			require.Error(t, err)
			assert.EqualError(t, err, "Only active subscription 5 can be canceled")
			assert.ErrorIs(t, err, subscription.ErrInvalidSubscriptionState)
			store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		})
	}

	t.Run("cancels active subscription with one update", func(t *testing.T) {
		t.Parallel()

		sub := activeSubscription(5)
		want := sub
		want.Status = subscription.StatusCanceled

		store := &mockStore{}
		store.On("FindByID", ctx, int64(5)).Return(sub, nil).Once()
		store.On("Update", ctx, want).Return(want, nil).Once()

		require.NoError(t, subscription.NewService(store).Cancel(ctx, 5))
		store.AssertExpectations(t)
		store.AssertNumberOfCalls(t, "Update", 1)
	})

	t.Run("update failure is returned", func(t *testing.T) {
		t.Parallel()

		updateErr := errors.New("write failed")
		store := &mockStore{}
		store.On("FindByID", ctx, int64(5)).Return(activeSubscription(5), nil).Once()
		store.On("Update", ctx, mock.Anything).Return(subscription.Subscription{}, updateErr).Once()

		assert.Same(t, updateErr, subscription.NewService(store).Cancel(ctx, 5))
	})
}

func TestService_Expire(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2026, time.October, 19, 9, 30, 0, 0, time.UTC)

	t.Run("unknown id", func(t *testing.T) {
		t.Parallel()

		svc := subscription.NewService(subscription.NewMemoryStore())
		assert.ErrorIs(t, svc.Expire(ctx, 1), subscription.ErrSubscriptionNotFound)
	})

	t.Run("rejects expired", func(t *testing.T) {
		t.Parallel()

		sub := activeSubscription(3)
		sub.Status = subscription.StatusExpired

		store := &mockStore{}
		store.On("FindByID", ctx, int64(3)).Return(sub, nil).Once()

		err := subscription.NewService(store).Expire(ctx, 3)
		assert.EqualError(t, err, "Subscription 3 has already expired")
		store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	for _, status := range []subscription.Status{subscription.StatusActive, subscription.StatusCanceled} {
		t.Run("expires "+status.String()+" at clock time", func(t *testing.T) {
			t.Parallel()

			sub := activeSubscription(3)
			sub.Status = status
			want := sub
			want.Status = subscription.StatusExpired
			want.ExpirationDate = now

			store := &mockStore{}
			store.On("FindByID", ctx, int64(3)).Return(sub, nil).Once()
			store.On("Update", ctx, want).Return(want, nil).Once()

			svc := subscription.NewService(store, subscription.WithClock(subscription.FixedClock(now)))
			require.NoError(t, svc.Expire(ctx, 3))
			store.AssertExpectations(t)
		})
	}
}

func TestService_ReadAndDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := subscription.NewService(subscription.NewMemoryStore())

	a, err := svc.Upsert(ctx, validRequest())
	require.NoError(t, err)

	other := validRequest()
	other.UserID = int64Ptr(2)
	b, err := svc.Upsert(ctx, other)
	require.NoError(t, err)

	got, err := svc.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a, got)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []subscription.Subscription{a, b}, all)

	byUser, err := svc.ListByUser(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []subscription.Subscription{b}, byUser)

	none, err := svc.ListByUser(ctx, 0)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	deleted, err := svc.Delete(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.Delete(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = svc.Get(ctx, a.ID)
	assert.ErrorIs(t, err, subscription.ErrSubscriptionNotFound)
}

func TestService_Logging(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	buf := &bytes.Buffer{}
	log := slog.New(slog.NewJSONHandler(buf, nil))
	svc := subscription.NewService(subscription.NewMemoryStore(), subscription.WithLogger(log))

	sub, err := svc.Upsert(ctx, validRequest())
	require.NoError(t, err)
	require.NoError(t, svc.Cancel(ctx, sub.ID))
	require.Error(t, svc.Cancel(ctx, sub.ID))

	out := buf.String()
	assert.Contains(t, out, `"msg":"subscription saved"`)
	assert.Contains(t, out, `"msg":"subscription status changed"`)
	assert.Contains(t, out, `"msg":"subscription transition rejected"`)
	assert.Contains(t, out, fmt.Sprintf(`"subscription_id":%d`, sub.ID))
}

type validatorFunc func(subscription.CreateRequest) validator.ValidationErrors

func (f validatorFunc) Validate(req subscription.CreateRequest) validator.ValidationErrors {
	return f(req)
}

type mapperFunc func(subscription.CreateRequest) (subscription.Subscription, error)

func (f mapperFunc) Map(req subscription.CreateRequest) (subscription.Subscription, error) {
	return f(req)
}
