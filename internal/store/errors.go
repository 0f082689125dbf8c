package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a user with the same email is
	// already registered.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("no user was found")

	// ErrModelNotFound is returned when no model record matches both the
	// record identifier and the owner identifier. A record owned by someone
	// else is indistinguishable from a missing one.
	ErrModelNotFound = errors.New("model not found")

	// ErrAssetNotFound is returned when an object key does not exist.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrLocalSessionNotFound is returned by the client store when no
	// credential has been saved yet.
	ErrLocalSessionNotFound = errors.New("local session not found")

	// ErrUnsupportedDSN is returned when the DSN scheme selects no backend.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a driver-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT, UPDATE or
	// DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a result set fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingDocument is returned when an embedded document cannot be
	// encoded or decoded.
	ErrEncodingDocument = errors.New("failed to encode document")
)
