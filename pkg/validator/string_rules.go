package validator

import "strings"

// RequiredString validates that a string is not empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Code:    CodeRequired,
			Field:   field,
			Message: "field is required",
		},
	}
}

// Required validates that a string is not empty. Whitespace counts as content.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return value != ""
		},
		Error: ValidationError{
			Code:    CodeRequired,
			Field:   field,
			Message: "field is required",
		},
	}
}
