package httpserver

import (
	"log/slog"
	"net/http"
)

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger used for lifecycle messages and passed to hooks.
// Nil keeps the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithServer serves through srv. Its Handler is replaced on Run; fields it
// already sets win over Config.
func WithServer(srv *http.Server) Option {
	if srv == nil {
		panic("httpserver: WithServer requires a server")
	}
	return func(s *Server) { s.base = srv }
}

// WithStartHook registers a callback that runs once the listener is bound.
func WithStartHook(h func(*slog.Logger)) Option {
	if h == nil {
		panic("httpserver: nil start hook")
	}
	return func(s *Server) { s.startHooks = append(s.startHooks, h) }
}

// WithStopHook registers a callback that runs after graceful shutdown.
func WithStopHook(h func(*slog.Logger)) Option {
	if h == nil {
		panic("httpserver: nil stop hook")
	}
	return func(s *Server) { s.stopHooks = append(s.stopHooks, h) }
}
