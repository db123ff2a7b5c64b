package handler

import (
	"context"
	"net/http"
)

// HandlerFunc handles a request already bound into R.
type HandlerFunc[R any] func(ctx context.Context, req R) Response

// Response renders itself to an http.ResponseWriter. A render error is passed
// to the ErrorHandler, so a Response must not write anything before it knows
// it will succeed.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Bind parses an HTTP request into v.
type Bind func(r *http.Request, v any) error

// ErrorHandler writes the response for a failed bind or render.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// WrapOption configures Wrap.
type WrapOption func(*wrapConfig)

type wrapConfig struct {
	binders      []Bind
	errorHandler ErrorHandler
}

// WithBinders adds binders applied in order to the same request value.
func WithBinders(binders ...Bind) WrapOption {
	return func(c *wrapConfig) {
		for _, b := range binders {
			if b != nil {
				c.binders = append(c.binders, b)
			}
		}
	}
}

// WithErrorHandler replaces the default error handler, NewErrorHandler(nil).
func WithErrorHandler(h ErrorHandler) WrapOption {
	return func(c *wrapConfig) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// Wrap converts a typed HandlerFunc into an http.HandlerFunc.
//
//	r.Post("/subscriptions", handler.Wrap(h.create,
//		handler.WithBinders(binder.JSON()),
//		handler.WithErrorHandler(errorHandler),
//	))
func Wrap[R any](h HandlerFunc[R], opts ...WrapOption) http.HandlerFunc {
	cfg := &wrapConfig{errorHandler: NewErrorHandler(nil)}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req R
		for _, bind := range cfg.binders {
			if err := bind(r, &req); err != nil {
				cfg.errorHandler(w, r, err)
				return
			}
		}

		resp := h(r.Context(), req)
		if resp == nil {
			cfg.errorHandler(w, r, ErrNilResponse)
			return
		}
		if err := resp.Render(w, r); err != nil {
			cfg.errorHandler(w, r, err)
		}
	}
}
