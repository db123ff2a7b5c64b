package subscriptions

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/subscriptions/handler"
	"github.com/dmitrymomot/subscriptions/pkg/subscription"
	"github.com/dmitrymomot/subscriptions/pkg/validator"
)

// Error codes this module adds to the ones in package handler.
const (
	CodeValidationFailed = "validation_failed"
	CodeInvalidState     = "invalid_state"
)

// classify maps subscription domain errors. Everything else falls through
// to the handler package defaults.
func classify(err error) (int, *handler.ErrorDetail, bool) {
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		details := make([]handler.FieldDetail, 0, len(verrs))
		for _, v := range verrs {
			details = append(details, handler.FieldDetail{Code: v.Code, Field: v.Field, Message: v.Message})
		}
		return http.StatusUnprocessableEntity, &handler.ErrorDetail{
			Code:    CodeValidationFailed,
			Message: "validation failed",
			Details: details,
		}, true
	}

	var stateErr *subscription.StateError
	switch {
	case errors.Is(err, subscription.ErrSubscriptionNotFound):
		return http.StatusNotFound, &handler.ErrorDetail{Code: handler.CodeNotFound, Message: err.Error()}, true
	case errors.As(err, &stateErr):
		return http.StatusConflict, &handler.ErrorDetail{Code: CodeInvalidState, Message: stateErr.Error()}, true
	}
	return 0, nil, false
}
