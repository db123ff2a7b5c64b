// Package mongo manages MongoDB connections for the subscription stores.
//
// Configuration comes from MONGODB_* environment variables. New connects and
// pings with retries so a freshly started replica set does not fail the
// service on boot. Healthcheck wraps Ping for the HTTP health endpoint.
//
//	var cfg mongo.Config
//	config.MustLoad(&cfg)
//
//	db, err := mongo.NewWithDatabase(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer db.Client().Disconnect(context.Background())
//
//	store := subscription.NewMongoStore(db)
//
// Connection failures are joined with ErrFailedToConnectToMongo, so callers
// can match them with errors.Is.
package mongo
