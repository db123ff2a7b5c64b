package validator

import (
	"fmt"
	"time"
)

// DateBetween validates that value lies within [start, end], both ends inclusive.
func DateBetween(field string, value time.Time, start time.Time, end time.Time) Rule {
	return Rule{
		Check: func() bool {
			return !value.Before(start) && !value.After(end)
		},
		Error: ValidationError{
			Code:    CodeInvalidDate,
			Field:   field,
			Message: fmt.Sprintf("date must be between %s and %s", start.Format(time.RFC3339), end.Format(time.RFC3339)),
		},
	}
}
