package sqlite

import "errors"

var (
	ErrEmptyPath               = errors.New("empty sqlite path, use SQLITE_PATH env var")
	ErrFailedToCreateDir       = errors.New("failed to create sqlite database directory")
	ErrFailedToOpenDB          = errors.New("failed to open sqlite database")
	ErrHealthcheckFailed       = errors.New("healthcheck failed, connection is not available")
	ErrFailedToApplyMigrations = errors.New("failed to apply migrations")
	ErrMigrationsNotProvided   = errors.New("migrations filesystem not provided")
)
