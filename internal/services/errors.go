package services

import "errors"

var (
	// ErrUnavailable is returned when a read or write reaches the store
	// before persistent storage exists (no database handle yet).
	ErrUnavailable = errors.New("persistent storage unavailable")

	// ErrNotFound is returned when an update targets a missing entry id.
	ErrNotFound = errors.New("log entry not found")

	// ErrImportMalformed rejects an import payload that is not a
	// recognizable array of log entries. Nothing is written.
	ErrImportMalformed = errors.New("import payload is not an array of log entries")
)
