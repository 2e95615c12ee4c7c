package store

import "errors"

// Sentinel errors returned by storages to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrStorage wraps every I/O failure of a storage backend.
	ErrStorage = errors.New("vault storage error")

	// ErrVersionConflict is returned when an optimistic-locking check fails:
	// the vault was modified by another writer after the caller loaded it.
	ErrVersionConflict = errors.New("vault version conflict occurred")
)

// Low-level database operation errors. They are wrapped together with
// ErrStorage by the SQL storage.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or UPDATE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a vault row fails.
	ErrScanningRow = errors.New("failed to scan vault row")
)
