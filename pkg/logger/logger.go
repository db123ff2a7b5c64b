package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Format selects the slog handler.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Deployment environments understood by WithEnvironment.
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

type config struct {
	level      slog.Level
	format     Format
	output     io.Writer
	attrs      []slog.Attr
	extractors []ContextExtractor
}

// Option configures New.
type Option func(*config)

func WithLevel(l slog.Level) Option {
	return func(c *config) { c.level = l }
}

// WithLevelName sets the level from "debug", "info", "warn" or "error"
// (any form slog.Level.UnmarshalText accepts). Empty or unknown names are ignored.
func WithLevelName(name string) Option {
	return func(c *config) {
		var l slog.Level
		if name != "" && l.UnmarshalText([]byte(name)) == nil {
			c.level = l
		}
	}
}

// WithFormat panics on anything but FormatJSON or FormatText; a logger is
// built at startup, where failing loudly is preferable.
func WithFormat(f Format) Option {
	if f != FormatJSON && f != FormatText {
		panic(fmt.Sprintf("logger: unknown format %q", f))
	}
	return func(c *config) { c.format = f }
}

// WithOutput ignores a nil writer.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithAttr adds static attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) { c.attrs = append(c.attrs, attrs...) }
}

// WithContextExtractors registers extractors run on every record. Nil ones are skipped.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(c *config) {
		for _, ex := range extractors {
			if ex != nil {
				c.extractors = append(c.extractors, ex)
			}
		}
	}
}

// WithEnvironment applies the preset for env and tags records with "env"
// and, when service is set, "service".
//
// Development (the fallback for unknown values) logs text at debug level.
// Staging and production ("stage" and "prod" are accepted too) log JSON at info.
func WithEnvironment(env, service string) Option {
	return func(c *config) {
		switch env {
		case EnvProduction, "prod":
			env, c.format, c.level = EnvProduction, FormatJSON, slog.LevelInfo
		case EnvStaging, "stage":
			env, c.format, c.level = EnvStaging, FormatJSON, slog.LevelInfo
		default:
			env, c.format, c.level = EnvDevelopment, FormatText, slog.LevelDebug
		}
		c.attrs = append(c.attrs, slog.String("env", env))
		if service != "" {
			c.attrs = append(c.attrs, slog.String("service", service))
		}
	}
}

// New builds a logger. Without options it writes JSON at info level to stdout.
func New(opts ...Option) *slog.Logger {
	c := &config{level: slog.LevelInfo, format: FormatJSON, output: os.Stdout}
	for _, opt := range opts {
		opt(c)
	}

	handlerOpts := &slog.HandlerOptions{Level: c.level}
	var h slog.Handler
	if c.format == FormatText {
		h = slog.NewTextHandler(c.output, handlerOpts)
	} else {
		h = slog.NewJSONHandler(c.output, handlerOpts)
	}
	if len(c.attrs) > 0 {
		h = h.WithAttrs(c.attrs)
	}
	if len(c.extractors) > 0 {
		h = &contextHandler{next: h, extractors: c.extractors}
	}
	return slog.New(h)
}
