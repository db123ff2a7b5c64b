package sqlite

import "time"

type Config struct {
	Path            string        `env:"SQLITE_PATH" envDefault:"data/subscriptions.db"`                    // Path is the database file, or ":memory:".
	BusyTimeout     time.Duration `env:"SQLITE_BUSY_TIMEOUT" envDefault:"5s"`                               // BusyTimeout is how long a writer waits on a locked database.
	JournalMode     string        `env:"SQLITE_JOURNAL_MODE" envDefault:"WAL"`                              // JournalMode is applied through the journal_mode pragma.
	MigrationsTable string        `env:"SQLITE_MIGRATIONS_TABLE" envDefault:"subscriptions_schema_version"` // MigrationsTable stores the applied goose version.
}
