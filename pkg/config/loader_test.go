package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/subscriptions/pkg/config"
)

type defaultsConfig struct {
	Driver string        `env:"CFGTEST_DEFAULT_DRIVER" envDefault:"memory"`
	TTL    time.Duration `env:"CFGTEST_DEFAULT_TTL" envDefault:"5m"`
	Cache  bool          `env:"CFGTEST_DEFAULT_CACHE" envDefault:"false"`
}

type setenvConfig struct {
	Addr string `env:"CFGTEST_ADDR" envDefault:":8080"`
	Port int    `env:"CFGTEST_PORT"`
}

type cachedConfig struct {
	Value string `env:"CFGTEST_CACHED" envDefault:"first"`
}

type requiredConfig struct {
	URL string `env:"CFGTEST_REQUIRED_URL,required"`
}

type fileConfig struct {
	Driver    string        `env:"CFGTEST_DRIVER"`
	TTL       time.Duration `env:"CFGTEST_TTL"`
	Providers []string      `env:"CFGTEST_PROVIDERS" envSeparator:","`
	Name      string        `env:"CFGTEST_NAME"`
}

func TestLoad_Defaults(t *testing.T) {
	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "memory", cfg.Driver)
	assert.Equal(t, 5*time.Minute, cfg.TTL)
	assert.False(t, cfg.Cache)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("CFGTEST_ADDR", "127.0.0.1:9000")
	t.Setenv("CFGTEST_PORT", "9000")
	config.ResetCache()

	var cfg setenvConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, 9000, cfg.Port)
}

func TestLoad_CachesPerType(t *testing.T) {
	config.ResetCache()

	var first cachedConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "first", first.Value)

	t.Setenv("CFGTEST_CACHED", "second")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value, "cached value must be returned")

	config.ResetCache()

	var third cachedConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "second", third.Value)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("nil pointer", func(t *testing.T) {
		var cfg *defaultsConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})

	t.Run("missing required variable", func(t *testing.T) {
		config.ResetCache()

		var cfg requiredConfig
		err := config.Load(&cfg)
		require.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("must load panics", func(t *testing.T) {
		config.ResetCache()

		assert.Panics(t, func() {
			var cfg requiredConfig
			config.MustLoad(&cfg)
		})
	})
}

func TestLoadEnv(t *testing.T) {
	// LoadEnv writes to the process environment; register cleanups for every key it sets.
	for _, key := range []string{"CFGTEST_DRIVER", "CFGTEST_TTL", "CFGTEST_PROVIDERS", "CFGTEST_NAME"} {
		t.Setenv(key, "")
	}

	t.Run("single file", func(t *testing.T) {
		require.NoError(t, config.LoadEnv("testdata/.env.base"))

		var cfg fileConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "sqlite", cfg.Driver)
		assert.Equal(t, 90*time.Second, cfg.TTL)
		assert.Equal(t, []string{"GOOGLE", "APPLE"}, cfg.Providers)
		assert.Equal(t, "quoted name", cfg.Name)
	})

	t.Run("later files win", func(t *testing.T) {
		require.NoError(t, config.LoadEnv("testdata/.env.base", "testdata/.env.override"))

		var cfg fileConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "postgres", cfg.Driver)
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.LoadEnv("testdata/does-not-exist.env")
		require.ErrorIs(t, err, config.ErrLoadingEnvFile)

		assert.Panics(t, func() {
			config.MustLoadEnv("testdata/does-not-exist.env")
		})
	})

	t.Run("no paths", func(t *testing.T) {
		assert.NoError(t, config.LoadEnv())
	})
}
