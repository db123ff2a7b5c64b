package subscription

import "log/slog"

// ServiceOption configures a Service instance.
type ServiceOption func(*service)

// WithValidator replaces the default CreateRequestValidator.
func WithValidator(v RequestValidator) ServiceOption {
	return func(s *service) {
		if v != nil {
			s.validator = v
		}
	}
}

// WithMapper replaces the default CreateRequestMapper.
func WithMapper(m RequestMapper) ServiceOption {
	return func(s *service) {
		if m != nil {
			s.mapper = m
		}
	}
}

// WithClock sets the time source used when expiring subscriptions.
func WithClock(c Clock) ServiceOption {
	return func(s *service) {
		if c != nil {
			s.clock = c
		}
	}
}

func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *service) {
		if l != nil {
			s.logger = l
		}
	}
}
