package handler

import (
	"errors"
	"net/http"
)

// ErrNilResponse means a HandlerFunc returned nil instead of a Response.
var ErrNilResponse = errors.New("handler returned nil response")

// Error codes written to ErrorDetail.Code by this package.
const (
	CodeBadRequest           = "bad_request"
	CodeNotFound             = "not_found"
	CodeMethodNotAllowed     = "method_not_allowed"
	CodeUnsupportedMediaType = "unsupported_media_type"
	CodeInternal             = "internal_error"
)

// HTTPError is an error with a fixed status. Key becomes ErrorDetail.Code.
type HTTPError struct {
	Code int
	Key  string
}

func (e HTTPError) Error() string {
	return e.Key
}

var (
	ErrBadRequest           = HTTPError{Code: http.StatusBadRequest, Key: CodeBadRequest}
	ErrNotFound             = HTTPError{Code: http.StatusNotFound, Key: CodeNotFound}
	ErrMethodNotAllowed     = HTTPError{Code: http.StatusMethodNotAllowed, Key: CodeMethodNotAllowed}
	ErrUnsupportedMediaType = HTTPError{Code: http.StatusUnsupportedMediaType, Key: CodeUnsupportedMediaType}
)
