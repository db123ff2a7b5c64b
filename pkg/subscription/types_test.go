package subscription_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/subscriptions/pkg/subscription"
)

func TestParseProvider(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    subscription.Provider
		wantErr bool
	}{
		{in: "GOOGLE", want: subscription.ProviderGoogle},
		{in: "APPLE", want: subscription.ProviderApple},
		{in: "google", wantErr: true},
		{in: " APPLE", wantErr: true},
		{in: "", wantErr: true},
		{in: "AMAZON", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := subscription.ParseProvider(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, subscription.ErrInvalidProvider)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProviders(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []subscription.Provider{subscription.ProviderGoogle, subscription.ProviderApple}, subscription.Providers())
	assert.Equal(t, []string{"GOOGLE", "APPLE"}, subscription.ProviderNames())

	// The returned slice is a copy.
	p := subscription.Providers()
	p[0] = "MUTATED"
	assert.Equal(t, subscription.ProviderGoogle, subscription.Providers()[0])
}

func TestStatus(t *testing.T) {
	t.Parallel()

	assert.False(t, subscription.StatusActive.IsTerminal())
	assert.False(t, subscription.StatusCanceled.IsTerminal())
	assert.True(t, subscription.StatusExpired.IsTerminal())

	sub := activeSubscription(1)
	assert.True(t, sub.IsActive())
	sub.Status = subscription.StatusCanceled
	assert.True(t, sub.IsCanceled())
	sub.Status = subscription.StatusExpired
	assert.True(t, sub.IsExpired())
}
