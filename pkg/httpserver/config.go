package httpserver

import "time"

// Config holds the listener address and timeouts. Zero or negative values
// fall back to the envDefault shown on each field.
type Config struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"` // drain window for in-flight requests
}

func (c Config) withDefaults() Config {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
	c.ReadTimeout = positiveOr(c.ReadTimeout, 30*time.Second)
	c.WriteTimeout = positiveOr(c.WriteTimeout, 30*time.Second)
	c.IdleTimeout = positiveOr(c.IdleTimeout, 120*time.Second)
	c.ShutdownTimeout = positiveOr(c.ShutdownTimeout, 5*time.Second)
	return c
}

func positiveOr(d, fallback time.Duration) time.Duration {
	if d > 0 {
		return d
	}
	return fallback
}
