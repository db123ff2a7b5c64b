package httpserver

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// Server runs one http.Handler with graceful shutdown.
type Server struct {
	cfg        Config
	base       *http.Server
	log        *slog.Logger
	startHooks []func(*slog.Logger)
	stopHooks  []func(*slog.Logger)

	mu       sync.Mutex
	srv      *http.Server
	shutdown sync.Once
}

// New returns a Server for cfg. Missing config values take their defaults.
func New(cfg Config, opts ...Option) *Server {
	s := &Server{
		cfg: cfg.withDefaults(),
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run binds the listener, runs the start hooks and serves handler until ctx
// is done, SIGINT or SIGTERM arrives, or Shutdown is called.
// A Server runs at most once; listen and serve failures are joined with ErrStart.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	srv, ln, err := s.listen(handler)
	if err != nil {
		return errors.Join(ErrStart, err)
	}

	s.log.InfoContext(ctx, "http server listening", slog.String("addr", ln.Addr().String()))
	for _, h := range s.startHooks {
		h(s.log)
	}

	served := make(chan error, 1)
	go func() { served <- srv.Serve(ln) }()

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case <-sigCtx.Done():
		s.log.Info("http server shutting down")
		shutdownErr := s.Shutdown(context.Background())
		err = <-served
		if shutdownErr != nil {
			return shutdownErr
		}
	case err = <-served:
	}

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Join(ErrStart, err)
	}
	return nil
}

func (s *Server) listen(handler http.Handler) (*http.Server, net.Listener, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.srv != nil {
		return nil, nil, ErrAlreadyRunning
	}

	srv := s.base
	if srv == nil {
		srv = &http.Server{}
	}
	if srv.Addr == "" {
		srv.Addr = s.cfg.Addr
	}
	if srv.ReadTimeout == 0 {
		srv.ReadTimeout = s.cfg.ReadTimeout
	}
	if srv.WriteTimeout == 0 {
		srv.WriteTimeout = s.cfg.WriteTimeout
	}
	if srv.IdleTimeout == 0 {
		srv.IdleTimeout = s.cfg.IdleTimeout
	}
	srv.Handler = handler

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return nil, nil, err
	}
	s.srv = srv
	return srv, ln, nil
}

// Shutdown drains in-flight requests within Config.ShutdownTimeout and then
// runs the stop hooks. Calls before Run and repeated calls are no-ops.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()
	if srv == nil {
		return nil
	}

	var err error
	s.shutdown.Do(func() {
		ctx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
		defer cancel()
		err = srv.Shutdown(ctx)
		for _, h := range s.stopHooks {
			h(s.log)
		}
	})

	if err != nil {
		return errors.Join(ErrShutdown, err)
	}
	return nil
}
