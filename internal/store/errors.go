package store

import "errors"

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails before it reaches the database.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("failed to scan row")
)

// Serialization errors around the stored entry list.
var (
	// ErrEncodingEntries is returned when the entry list cannot be encoded
	// into its stored JSON form.
	ErrEncodingEntries = errors.New("failed to encode diary entries")

	// ErrDecodingEntries is returned when a stored blob cannot be decoded
	// back into an entry list, which means the blob was corrupted or
	// written by something other than this client.
	ErrDecodingEntries = errors.New("failed to decode diary entries")
)
