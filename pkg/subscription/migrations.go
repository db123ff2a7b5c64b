package subscription

import (
	"embed"
	"io/fs"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

// PostgresMigrations returns the goose migrations for PostgresStore.
func PostgresMigrations() fs.FS {
	return mustSub("migrations/postgres")
}

// SQLiteMigrations returns the goose migrations for SQLiteStore.
func SQLiteMigrations() fs.FS {
	return mustSub("migrations/sqlite")
}

func mustSub(dir string) fs.FS {
	sub, err := fs.Sub(migrationsFS, dir)
	if err != nil {
		panic("subscription: embedded migrations missing: " + err.Error())
	}
	return sub
}
