package logger

import (
	"log/slog"
	"time"
)

// Error returns an "error" attribute, or an empty one for a nil err so that
// callers can pass it unconditionally.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func UserID(id int64) slog.Attr {
	return slog.Int64("user_id", id)
}

func SubscriptionID(id int64) slog.Attr {
	return slog.Int64("subscription_id", id)
}

// RequestID returns an empty attribute for an empty id.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Driver names the storage backend.
func Driver(name string) slog.Attr {
	return slog.String("driver", name)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event names a lifecycle event such as "cancel" or "expire".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

func HTTPStatus(code int) slog.Attr {
	return slog.Int("status", code)
}
