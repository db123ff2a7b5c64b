// Package subscription manages the lifecycle of user subscriptions.
//
// A subscription is created ACTIVE from a validated CreateRequest and can then
// be canceled or expired:
//
//	ACTIVE ──cancel──▶ CANCELED
//	ACTIVE ──expire──▶ EXPIRED
//	CANCELED ──expire──▶ EXPIRED
//
// EXPIRED accepts no events. Rejected events return *StateError, which
// matches ErrInvalidSubscriptionState through errors.Is.
//
// # Components
//
//   - CreateRequestValidator runs four independent checks and reports every
//     failure with a numeric code (100 userId, 101 name, 102 provider,
//     103 expirationDate).
//   - CreateRequestMapper turns a request into an ACTIVE Subscription with no id.
//   - Transition applies an event to a Subscription value using the transition table.
//   - Service ties validation, mapping, the lifecycle and a Store together.
//     The current time comes from an injected Clock.
//
// # Storage
//
// Store is implemented by MemoryStore, PostgresStore (pgx), SQLiteStore
// (modernc.org/sqlite) and MongoStore. CachedStore puts a read-through cache
// (redis.Storage or cache.Memory) in front of any of them. Goose migrations for the SQL stores
// are embedded and exposed by PostgresMigrations and SQLiteMigrations.
//
// # Usage
//
//	store := subscription.NewMemoryStore()
//	svc := subscription.NewService(store,
//		subscription.WithLogger(log),
//	)
//
//	userID := int64(42)
//	sub, err := svc.Upsert(ctx, subscription.CreateRequest{
//		UserID:         &userID,
//		Name:           "premium",
//		Provider:       "GOOGLE",
//		ExpirationDate: time.Now().AddDate(0, 1, 0),
//	})
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//		// report verrs to the caller
//	}
//
//	if err := svc.Cancel(ctx, sub.ID); errors.Is(err, subscription.ErrInvalidSubscriptionState) {
//		// already canceled or expired
//	}
//
// The service performs one read and at most one write per call and does not
// coordinate concurrent writers.
package subscription
