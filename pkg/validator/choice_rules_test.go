package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/subscriptions/pkg/validator"
)

func TestInListString(t *testing.T) {
	t.Parallel()

	allowed := []string{"GOOGLE", "APPLE"}

	assert.True(t, validator.InListString("provider", "GOOGLE", allowed).Check())
	assert.True(t, validator.InListString("provider", "APPLE", allowed).Check())

	assert.False(t, validator.InListString("provider", "google", allowed).Check(), "match is case-sensitive")
	assert.False(t, validator.InListString("provider", "STRIPE", allowed).Check())
	assert.False(t, validator.InListString("provider", "", allowed).Check())
	assert.False(t, validator.InListString("provider", "", []string{""}).Check(), "empty value never matches")

	rule := validator.InListString("provider", "x", allowed)
	assert.Equal(t, validator.CodeInvalidValue, rule.Error.Code)
	assert.Equal(t, "must be one of: GOOGLE, APPLE", rule.Error.Message)
}
