package subscription_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/subscriptions/pkg/subscription"
)

func TestCreateRequestValidator(t *testing.T) {
	t.Parallel()

	v := subscription.NewCreateRequestValidator()

	t.Run("valid request", func(t *testing.T) {
		t.Parallel()

		errs := v.Validate(validRequest())
		assert.Empty(t, errs)
	})

	tests := []struct {
		name    string
		mutate  func(*subscription.CreateRequest)
		code    int
		field   string
		message string
	}{
		{
			name:    "missing user id",
			mutate:  func(r *subscription.CreateRequest) { r.UserID = nil },
			code:    subscription.CodeInvalidUserID,
			field:   "userId",
			message: "userId is invalid",
		},
		{
			name:    "empty name",
			mutate:  func(r *subscription.CreateRequest) { r.Name = "" },
			code:    subscription.CodeInvalidName,
			field:   "name",
			message: "name is invalid",
		},
		{
			name:    "empty provider",
			mutate:  func(r *subscription.CreateRequest) { r.Provider = "" },
			code:    subscription.CodeInvalidProvider,
			field:   "provider",
			message: "provider is invalid",
		},
		{
			name:    "unknown provider",
			mutate:  func(r *subscription.CreateRequest) { r.Provider = "PAYPAL" },
			code:    subscription.CodeInvalidProvider,
			field:   "provider",
			message: "provider is invalid",
		},
		{
			name:    "lowercase provider",
			mutate:  func(r *subscription.CreateRequest) { r.Provider = "google" },
			code:    subscription.CodeInvalidProvider,
			field:   "provider",
			message: "provider is invalid",
		},
		{
			name:    "minimum expiration",
			mutate:  func(r *subscription.CreateRequest) { r.ExpirationDate = time.Time{} },
			code:    subscription.CodeInvalidExpirationDate,
			field:   "expirationDate",
			message: "expirationDate is invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := validRequest()
			tt.mutate(&req)

			errs := v.Validate(req)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.code, errs[0].Code)
			assert.Equal(t, tt.field, errs[0].Field)
			assert.Equal(t, tt.message, errs[0].Message)
		})
	}

	t.Run("whitespace name is present", func(t *testing.T) {
		t.Parallel()

		req := validRequest()
		req.Name = "   "
		assert.Empty(t, v.Validate(req))
	})

	t.Run("expiration bounds are inclusive", func(t *testing.T) {
		t.Parallel()

		for _, at := range []time.Time{subscription.MinExpirationDate, subscription.MaxExpirationDate} {
			req := validRequest()
			req.ExpirationDate = at
			assert.Empty(t, v.Validate(req), at.String())
		}
	})

	t.Run("expiration past year 9999", func(t *testing.T) {
		t.Parallel()

		for _, at := range []time.Time{
			subscription.MaxExpirationDate.Add(time.Nanosecond),
			time.Date(10000, time.January, 1, 0, 0, 0, 0, time.UTC),
			time.Unix(1<<62, 0),
		} {
			req := validRequest()
			req.ExpirationDate = at
			errs := v.Validate(req)
			require.Len(t, errs, 1, at.String())
			assert.Equal(t, subscription.CodeInvalidExpirationDate, errs[0].Code)
			assert.Equal(t, "expirationDate is invalid", errs[0].Message)
		}
	})

	t.Run("all failures are reported in order", func(t *testing.T) {
		t.Parallel()

		errs := v.Validate(subscription.CreateRequest{})
		require.Len(t, errs, 4)
		assert.Equal(t, []int{100, 101, 102, 103}, errs.Codes())
		assert.Equal(t, []string{"userId", "name", "provider", "expirationDate"}, errs.Fields())
		assert.Equal(t, "userId is invalid", errs[0].Message)
		assert.Equal(t, "name is invalid", errs[1].Message)
		assert.Equal(t, "provider is invalid", errs[2].Message)
		assert.Equal(t, "expirationDate is invalid", errs[3].Message)
	})
}
