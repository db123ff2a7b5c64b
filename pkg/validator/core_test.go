package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/subscriptions/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Parallel()

	t.Run("returns default message when no errors", func(t *testing.T) {
		t.Parallel()
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		t.Parallel()
		errs := validator.ValidationErrors{{Code: 100, Field: "userId", Message: "userId is invalid"}}
		assert.Equal(t, "validation failed: userId: userId is invalid", errs.Error())
	})

	t.Run("keeps insertion order", func(t *testing.T) {
		t.Parallel()
		errs := validator.ValidationErrors{
			{Code: 2, Field: "b", Message: "second"},
			{Code: 1, Field: "a", Message: "first"},
		}
		assert.Equal(t, "validation failed: b: second; a: first", errs.Error())
		assert.Equal(t, []int{2, 1}, errs.Codes())
		assert.Equal(t, []string{"b", "a"}, errs.Fields())
	})
}

func TestValidationErrors_Lookup(t *testing.T) {
	t.Parallel()

	errs := validator.ValidationErrors{
		{Code: 101, Field: "name", Message: "name is invalid"},
		{Code: 102, Field: "provider", Message: "provider is invalid"},
		{Code: 109, Field: "name", Message: "too long"},
	}

	assert.True(t, errs.HasCode(102))
	assert.False(t, errs.HasCode(100))
	assert.Equal(t, []int{101, 102, 109}, errs.Codes())
	assert.Equal(t, []string{"name", "provider"}, errs.Fields())
	assert.Empty(t, validator.ValidationErrors{}.Codes())
}

func TestRule_WithError(t *testing.T) {
	t.Parallel()

	rule := validator.Required("name", "").WithError(101, "name is invalid")
	assert.Equal(t, validator.ValidationError{Code: 101, Field: "name", Message: "name is invalid"}, rule.Error)

	original := validator.Required("name", "")
	assert.Equal(t, validator.CodeRequired, original.Error.Code, "WithError must not mutate the source rule")
}

func TestCollect(t *testing.T) {
	t.Parallel()

	t.Run("returns nil when all rules pass", func(t *testing.T) {
		t.Parallel()
		errs := validator.Collect(
			validator.Required("name", "Ivan"),
			validator.InListString("provider", "GOOGLE", []string{"GOOGLE", "APPLE"}),
		)
		assert.Nil(t, errs)
	})

	t.Run("does not short-circuit and keeps rule order", func(t *testing.T) {
		t.Parallel()
		calls := 0
		failing := func(code int) validator.Rule {
			return validator.Rule{
				Check: func() bool { calls++; return false },
				Error: validator.ValidationError{Code: code, Field: fmt.Sprintf("f%d", code)},
			}
		}

		errs := validator.Collect(failing(3), failing(1), failing(2))
		assert.Equal(t, 3, calls)
		assert.Equal(t, []int{3, 1, 2}, errs.Codes())
	})
}

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("nil on success", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validator.Apply(validator.Required("name", "ok")))
	})

	t.Run("returns ValidationErrors on failure", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(validator.Required("name", ""), validator.RequiredString("title", " "))
		require.Error(t, err)
		assert.True(t, validator.IsValidationError(err))

		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 2)
		assert.Equal(t, "name", errs[0].Field)
		assert.Equal(t, "title", errs[1].Field)
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()

	assert.Nil(t, validator.ExtractValidationErrors(nil))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("boom")))
	assert.False(t, validator.IsValidationError(nil))
	assert.False(t, validator.IsValidationError(errors.New("boom")))

	wrapped := fmt.Errorf("create: %w", validator.ValidationErrors{{Code: 7, Field: "x"}})
	assert.True(t, validator.IsValidationError(wrapped))
	assert.Equal(t, []int{7}, validator.ExtractValidationErrors(wrapped).Codes())

	joined := errors.Join(errors.New("context"), validator.ValidationErrors{{Code: 8, Field: "y"}})
	assert.Equal(t, []int{8}, validator.ExtractValidationErrors(joined).Codes())
}
