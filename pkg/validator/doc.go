// Package validator provides small composable validation rules that are
// evaluated together and reported as one ordered list of failures.
//
// A Rule pairs a boolean Check with the ValidationError reported when the
// check fails. Collect and Apply run every rule in order and never stop at
// the first failure, so callers always see the complete set of problems:
//
//	errs := validator.Collect(
//	    validator.RequiredPtr("userId", req.UserID).WithError(100, "userId is invalid"),
//	    validator.Required("name", req.Name).WithError(101, "name is invalid"),
//	)
//	if len(errs) > 0 {
//	    return errs
//	}
//
// ValidationErrors implements error, so it can be returned directly and later
// recovered with ExtractValidationErrors or detected with IsValidationError.
// Each entry carries a numeric Code that transports can expose to clients.
//
// The package holds no state and all helpers are safe for concurrent use.
package validator
