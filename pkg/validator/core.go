package validator

import (
	"errors"
	"slices"
	"strings"
)

// ValidationError is one failed rule. Code is stable and meant for clients.
type ValidationError struct {
	Code    int
	Field   string
	Message string
}

// ValidationErrors lists failures in the order their rules were applied.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	var b strings.Builder
	b.WriteString("validation failed")
	for i, e := range ve {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(e.Field + ": " + e.Message)
	}
	return b.String()
}

// HasCode reports whether any failure carries code.
func (ve ValidationErrors) HasCode(code int) bool {
	return slices.ContainsFunc(ve, func(e ValidationError) bool { return e.Code == code })
}

// Codes returns the failure codes in order.
func (ve ValidationErrors) Codes() []int {
	out := make([]int, len(ve))
	for i, e := range ve {
		out[i] = e.Code
	}
	return out
}

// Fields returns each failed field once, in order of first failure.
func (ve ValidationErrors) Fields() []string {
	var out []string
	for _, e := range ve {
		if !slices.Contains(out, e.Field) {
			out = append(out, e.Field)
		}
	}
	return out
}

// Rule pairs a check with the failure it reports.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// WithError returns a copy of r reporting code and message instead.
func (r Rule) WithError(code int, message string) Rule {
	r.Error.Code, r.Error.Message = code, message
	return r
}

// Collect runs every rule, never stopping early. It returns nil when all pass.
func Collect(rules ...Rule) ValidationErrors {
	var errs ValidationErrors
	for _, r := range rules {
		if !r.Check() {
			errs = append(errs, r.Error)
		}
	}
	return errs
}

// Apply is Collect returning a plain error, nil on success.
func Apply(rules ...Rule) error {
	if errs := Collect(rules...); len(errs) > 0 {
		return errs
	}
	return nil
}

// ExtractValidationErrors finds ValidationErrors anywhere in err's chain.
func ExtractValidationErrors(err error) ValidationErrors {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}

func IsValidationError(err error) bool {
	var ve ValidationErrors
	return errors.As(err, &ve)
}
