package main

import "errors"

var (
	ErrUnknownDriver       = errors.New("unknown storage driver")
	ErrUnknownCacheDriver  = errors.New("unknown cache driver")
	ErrMigrationsNotNeeded = errors.New("driver has no migrations")
	ErrInvalidID           = errors.New("invalid id")
	ErrNotDeleted          = errors.New("subscription not found")
)
