package main

import (
	"time"

	"github.com/dmitrymomot/subscriptions/pkg/httpserver"
)

// Storage drivers accepted by --driver and STORAGE_DRIVER.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMongo    = "mongo"
)

var drivers = []string{DriverMemory, DriverPostgres, DriverSQLite, DriverMongo}

// Cache drivers accepted by CACHE_DRIVER.
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

type appConfig struct {
	Name     string `env:"APP_NAME" envDefault:"subscriptions"`
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL"`

	Driver       string        `env:"STORAGE_DRIVER" envDefault:"memory"`
	CacheEnabled bool          `env:"CACHE_ENABLED" envDefault:"false"`
	CacheDriver  string        `env:"CACHE_DRIVER" envDefault:"memory"` // memory or redis
	CacheSize    int           `env:"CACHE_SIZE" envDefault:"1024"`     // entry limit of the memory cache
	CacheTTL     time.Duration `env:"CACHE_TTL" envDefault:"5m"`

	HTTP httpserver.Config
}
