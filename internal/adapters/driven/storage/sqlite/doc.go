// Package sqlite provides a unified SQLite-based implementation of the
// storage ports.
//
// The adapter uses modernc.org/sqlite, a pure Go SQLite implementation
// that requires no CGO, enabling easy cross-compilation. A single
// database connection backs all store interfaces through wrapper types:
//
//   - UniversityStore: cached university records
//   - ScholarshipStore: cached scholarship records
//   - FavouriteStore: the user's favourites
//   - SessionStore: the signed-in session
//
// # Schema
//
// The database schema is managed through versioned migrations stored in
// the migrations/ directory. Each migration is a pair of .up.sql and
// .down.sql files.
//
// # Data Location
//
// By default, the database is stored at ~/.pakuni/data/directory.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking
// provided by SQLite in WAL mode.
package sqlite
