package subscription

import (
	"time"

	"github.com/dmitrymomot/subscriptions/pkg/validator"
)

// Validation codes reported for a CreateRequest.
const (
	CodeInvalidUserID         = 100
	CodeInvalidName           = 101
	CodeInvalidProvider       = 102
	CodeInvalidExpirationDate = 103
)

// Expiration bounds accepted by CreateRequestValidator. The zero time is
// excluded. MaxExpirationDate is the last instant that round-trips through
// every store and through RFC 3339 JSON, which both stop at year 9999.
var (
	MinExpirationDate = time.Time{}.Add(time.Nanosecond)
	MaxExpirationDate = time.Date(9999, time.December, 31, 23, 59, 59, 999999999, time.UTC)
)

// RequestValidator checks a CreateRequest and returns every failure found.
type RequestValidator interface {
	Validate(req CreateRequest) validator.ValidationErrors
}

// CreateRequestValidator is the default RequestValidator.
type CreateRequestValidator struct{}

func NewCreateRequestValidator() CreateRequestValidator {
	return CreateRequestValidator{}
}

// Validate runs all four checks in a fixed order and never stops early.
// An empty result means the request is acceptable.
func (CreateRequestValidator) Validate(req CreateRequest) validator.ValidationErrors {
	return validator.Collect(
		validator.RequiredPtr("userId", req.UserID).
			WithError(CodeInvalidUserID, "userId is invalid"),
		validator.Required("name", req.Name).
			WithError(CodeInvalidName, "name is invalid"),
		validator.InListString("provider", req.Provider, ProviderNames()).
			WithError(CodeInvalidProvider, "provider is invalid"),
		validator.DateBetween("expirationDate", req.ExpirationDate, MinExpirationDate, MaxExpirationDate).
			WithError(CodeInvalidExpirationDate, "expirationDate is invalid"),
	)
}
