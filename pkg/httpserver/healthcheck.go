package httpserver

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/subscriptions/pkg/logger"
)

// Check is a named readiness check, for example pg.Healthcheck(pool).
type Check struct {
	Name string
	Fn   func(context.Context) error
}

type healthReport struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// HealthCheckHandler returns a handler for liveness and readiness checks.
//
// Without checks it always answers 200 {"status":"ok"}. With checks every
// check runs under timeout; any failure turns the answer into
// 503 {"status":"unavailable"} and the per-check results name the culprit.
func HealthCheckHandler(log *slog.Logger, timeout time.Duration, checks ...Check) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report := healthReport{Status: "ok"}
		code := http.StatusOK

		if len(checks) > 0 {
			ctx := r.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			report.Checks = make(map[string]string, len(checks))
			for _, c := range checks {
				if err := c.Fn(ctx); err != nil {
					log.ErrorContext(ctx, "Readiness check failed",
						logger.Component("healthcheck"),
						slog.String("check", c.Name),
						logger.Error(err),
					)
					report.Checks[c.Name] = "fail"
					report.Status = "unavailable"
					code = http.StatusServiceUnavailable
					continue
				}
				report.Checks[c.Name] = "ok"
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(report)
	}
}
