package validator

// RequiredPtr validates that an optional value is present.
func RequiredPtr[T any](field string, value *T) Rule {
	return Rule{
		Check: func() bool {
			return value != nil
		},
		Error: ValidationError{
			Code:    CodeRequired,
			Field:   field,
			Message: "field is required",
		},
	}
}
