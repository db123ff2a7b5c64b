// Package subscriptions exposes subscription.Service over HTTP as a chi router.
//
// Routes:
//
//	POST   /subscriptions                 create an ACTIVE subscription (201)
//	GET    /subscriptions                 list all subscriptions
//	GET    /subscriptions/{id}            fetch one subscription
//	DELETE /subscriptions/{id}            delete (204, 404 when absent)
//	POST   /subscriptions/{id}/cancel     ACTIVE -> CANCELED (204)
//	POST   /subscriptions/{id}/expire     ACTIVE|CANCELED -> EXPIRED (204)
//	GET    /users/{userID}/subscriptions  list a user's subscriptions
//	GET    /health                        readiness check
//
// Every body uses the handler.JSONResponse envelope. Validation failures
// answer 422 with one detail per failed check, rejected transitions answer 409
// with the state error message, and unknown ids answer 404. A create body
// that is not application/json answers 415 and one that does not decode
// answers 400.
package subscriptions
