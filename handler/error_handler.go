package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/subscriptions/pkg/binder"
	"github.com/dmitrymomot/subscriptions/pkg/logger"
)

// Classifier maps an error it recognizes to a status and client-facing
// detail. It reports false for errors it does not know.
type Classifier func(err error) (status int, detail *ErrorDetail, ok bool)

// NewErrorHandler returns an ErrorHandler that renders errors as JSON.
//
// Classifiers are tried in order before the built-in rules: HTTPError keeps
// its status, binder media-type errors map to 415, other binder errors to
// 400, and anything else to 500 with a generic message. Client errors are
// logged at warn and server errors at error.
func NewErrorHandler(log *slog.Logger, classifiers ...Classifier) ErrorHandler {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return func(w http.ResponseWriter, r *http.Request, err error) {
		status, detail := classifyError(err, classifiers)

		level := slog.LevelWarn
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		log.LogAttrs(r.Context(), level, "request failed",
			logger.Component("http"),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.HTTPStatus(status),
			logger.Error(err),
		)

		if renderErr := JSONError(detail, WithJSONStatus(status)).Render(w, r); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error response",
				logger.Component("http"),
				logger.Error(renderErr),
			)
		}
	}
}

func classifyError(err error, classifiers []Classifier) (int, *ErrorDetail) {
	for _, classify := range classifiers {
		if status, detail, ok := classify(err); ok {
			return status, detail
		}
	}

	var httpErr HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code, &ErrorDetail{Code: httpErr.Key, Message: http.StatusText(httpErr.Code)}
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		return http.StatusUnsupportedMediaType, &ErrorDetail{Code: CodeUnsupportedMediaType, Message: err.Error()}
	case errors.Is(err, binder.ErrFailedToParseJSON), errors.Is(err, binder.ErrFailedToParsePath):
		return http.StatusBadRequest, &ErrorDetail{Code: CodeBadRequest, Message: err.Error()}
	default:
		return http.StatusInternalServerError, &ErrorDetail{
			Code:    CodeInternal,
			Message: http.StatusText(http.StatusInternalServerError),
		}
	}
}
