package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/subscriptions/pkg/validator"
)

func TestRequiredPtr(t *testing.T) {
	t.Parallel()

	var missing *int64
	zero := int64(0)
	one := int64(1)

	assert.False(t, validator.RequiredPtr("userId", missing).Check())
	assert.True(t, validator.RequiredPtr("userId", &zero).Check())
	assert.True(t, validator.RequiredPtr("userId", &one).Check())
	assert.Equal(t, validator.CodeRequired, validator.RequiredPtr("userId", missing).Error.Code)
}
