// Package httpserver wraps net/http with graceful shutdown, timeouts from
// configuration, lifecycle hooks and a JSON health-check handler.
//
// Run binds the listener before it calls the start hooks, so a hook may
// assume the address is accepting connections. It then blocks until the
// context is cancelled, SIGINT/SIGTERM arrives or Shutdown is called, and
// drains in-flight requests within the shutdown timeout.
//
//	srv := httpserver.New(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Listen failures are joined with ErrStart and shutdown failures with
// ErrShutdown.
package httpserver
