// Package config loads typed configuration from environment variables.
//
// Structs declare their variables with github.com/caarlos0/env tags. Load
// parses a struct once per type and caches the result, so every package can
// ask for its own Config without threading values through constructors. A
// .env file in the working directory is read on first use via
// github.com/joho/godotenv; real environment variables take precedence.
//
//	var pgCfg pg.Config
//	config.MustLoad(&pgCfg)
//
// LoadEnv reads additional dotenv files (for example a file passed with
// --env-file) and resets the cache.
package config
