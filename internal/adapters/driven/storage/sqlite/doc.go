// Package sqlite provides a SQLite-based implementation of the profile store.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
//
// Profiles are stored as JSON text. Categories whose proportion is NaN are
// written as null and read back as NaN.
//
// # Data Location
//
// By default, the database is stored at ~/.aroma/data/profiles.db
package sqlite
