package validator

import (
	"fmt"
	"slices"
	"strings"
)

// InListString validates that value is one of allowedValues. An empty value
// never matches, even when the list contains an empty string.
func InListString(field, value string, allowedValues []string) Rule {
	return Rule{
		Check: func() bool {
			return value != "" && slices.Contains(allowedValues, value)
		},
		Error: ValidationError{
			Code:    CodeInvalidValue,
			Field:   field,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(allowedValues, ", ")),
		},
	}
}
