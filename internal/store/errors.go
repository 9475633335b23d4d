package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrScanRecordNotFound is returned when no scan record matches the
	// requested id, including ids that are not valid UUIDs.
	ErrScanRecordNotFound = errors.New("scan record not found")

	// ErrStoreUnavailable is returned when the database cannot be reached or
	// refuses new connections.
	ErrStoreUnavailable = errors.New("store is unavailable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a statement against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan scan record row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan scan record rows")
)

// Object storage errors.
var (
	// ErrPuttingObject is returned when the object store rejects an upload.
	ErrPuttingObject = errors.New("failed to put object")

	// ErrBucketNotFound is returned by health checks when the configured
	// bucket does not exist.
	ErrBucketNotFound = errors.New("bucket does not exist")
)
