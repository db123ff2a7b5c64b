// Package binder fills request structs from HTTP requests.
//
// JSON decodes the body strictly: the Content-Type must be application/json,
// unknown fields and trailing data are rejected, and the body is capped at
// DefaultMaxJSONSize. Path reads URL parameters into fields tagged `path`
// through a router-specific extractor:
//
//	type getRequest struct {
//		ID int64 `path:"id"`
//	}
//
//	bind := binder.Path(chi.URLParam)
//	var req getRequest
//	if err := bind(r, &req); err != nil {
//		// errors.Is(err, binder.ErrFailedToParsePath)
//	}
//
// Binders have the signature func(*http.Request, any) error so several can
// populate one struct in turn. Every failure wraps one of the package's
// sentinel errors for classification with errors.Is.
package binder
