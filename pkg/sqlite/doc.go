// Package sqlite opens embedded SQLite databases through the pure-Go
// modernc.org/sqlite driver and runs goose migrations against them.
//
// Config is read from SQLITE_* environment variables. Open applies the
// foreign_keys, busy_timeout, synchronous and journal_mode pragmas and caps
// the pool at one connection, since SQLite has a single writer.
package sqlite
