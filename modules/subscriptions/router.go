package subscriptions

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/subscriptions/handler"
	"github.com/dmitrymomot/subscriptions/pkg/binder"
	"github.com/dmitrymomot/subscriptions/pkg/httpserver"
	"github.com/dmitrymomot/subscriptions/pkg/requestid"
	"github.com/dmitrymomot/subscriptions/pkg/subscription"
)

// RouterOptions configures the subscriptions HTTP module.
// Service is required; everything else is optional.
type RouterOptions struct {
	Service subscription.Service
	Logger  *slog.Logger

	// HealthChecks are run by GET /health.
	HealthChecks  []httpserver.Check
	HealthTimeout time.Duration
}

// Router creates the subscriptions API router.
//
// Example:
//
//	svc := subscription.NewService(store)
//	srv := httpserver.New(cfg, httpserver.WithLogger(log))
//	srv.Run(ctx, subscriptions.Router(subscriptions.RouterOptions{Service: svc, Logger: log}))
func Router(opts RouterOptions) chi.Router {
	if opts.Service == nil {
		panic("subscriptions: Service is required")
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	timeout := opts.HealthTimeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	h := &handlers{svc: opts.Service}
	errorHandler := handler.NewErrorHandler(log, classify)
	jsonBody := handler.WithBinders(binder.JSON())
	pathParams := handler.WithBinders(binder.Path(chi.URLParam))
	onError := handler.WithErrorHandler(errorHandler)

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(middleware.Recoverer)

	r.Get("/health", httpserver.HealthCheckHandler(log, timeout, opts.HealthChecks...))

	r.Route("/subscriptions", func(r chi.Router) {
		r.Get("/", handler.Wrap[struct{}](h.list, onError))
		r.Post("/", handler.Wrap[CreateRequest](h.create, jsonBody, onError))
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", handler.Wrap[idRequest](h.get, pathParams, onError))
			r.Delete("/", handler.Wrap[idRequest](h.delete, pathParams, onError))
			r.Post("/cancel", handler.Wrap[idRequest](h.cancel, pathParams, onError))
			r.Post("/expire", handler.Wrap[idRequest](h.expire, pathParams, onError))
		})
	})
	r.Get("/users/{userID}/subscriptions", handler.Wrap[userRequest](h.listByUser, pathParams, onError))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		errorHandler(w, r, handler.ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		errorHandler(w, r, handler.ErrMethodNotAllowed)
	})

	return r
}
