package redis

import "errors"

var (
	ErrEmptyConnectionURL   = errors.New("redis cache URL is empty, use REDIS_URL env var")
	ErrInvalidConnectionURL = errors.New("redis cache URL cannot be parsed")
	ErrNotReady             = errors.New("redis cache did not answer PING before the connect deadline")
	ErrCacheUnavailable     = errors.New("redis cache is unavailable")
)
