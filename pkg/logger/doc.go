// Package logger builds *slog.Logger values from functional options.
//
// WithEnvironment picks a preset per deployment environment, WithLevelName
// lets LOG_LEVEL override it, and WithContextExtractors adds request-scoped
// attributes such as the request id to every record:
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, cfg.Name),
//		logger.WithLevelName(cfg.LogLevel),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//
//	log.InfoContext(ctx, "subscription status changed",
//		logger.SubscriptionID(sub.ID),
//		logger.Event("cancel"),
//	)
//
// The attribute helpers keep keys consistent across packages. Error returns
// an empty attribute for a nil error, so it needs no nil check.
package logger
