package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/subscriptions/pkg/logger"
)

func TestErrorAttrs(t *testing.T) {
	t.Parallel()

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
	assert.Equal(t, "error", logger.Error(errors.New("boom")).Key)
}

func TestDomainAttrs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		attr slog.Attr
		key  string
		want any
	}{
		{logger.UserID(3), "user_id", int64(3)},
		{logger.SubscriptionID(9), "subscription_id", int64(9)},
		{logger.Driver("postgres"), "driver", "postgres"},
		{logger.Component("cache"), "component", "cache"},
		{logger.Event("expire"), "event", "expire"},
		{logger.HTTPStatus(409), "status", int64(409)},
		{logger.Duration(time.Second), "duration", time.Second},
		{logger.RequestID("r-1"), "request_id", "r-1"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.want, tt.attr.Value.Any())
		})
	}

	assert.True(t, logger.RequestID("").Equal(slog.Attr{}))
}
