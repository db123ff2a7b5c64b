// Package handler adapts typed request handlers to net/http.
//
// Wrap binds the request into a value of type R with the configured binders,
// calls the HandlerFunc and renders the Response it returns. Bind and render
// failures, as well as errors returned through Error, go to one ErrorHandler
// that writes the JSON envelope:
//
//	{"data": ..., "meta": {...}, "error": {"code": "...", "message": "...", "details": [...]}}
//
// NewErrorHandler accepts Classifiers so a module can map its own errors
// (validation, not found, state conflicts) before the generic rules apply.
package handler
