package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when an attempt to register a new user
	// fails because the username or email is already taken. The match is
	// case-insensitive: "Ansel" and "ansel" collide.
	ErrUserAlreadyExists = errors.New("username or email already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrCameraNotFound is returned when a read or update targets a camera
	// record (by id) that does not exist in the database.
	ErrCameraNotFound = errors.New("camera was not found")

	// ErrStoreUnavailable wraps unexpected driver-level failures so that
	// callers can tell "the request was invalid" apart from "the store is
	// down". Domain errors above are never wrapped in it.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Low-level database operation errors. Repository methods nest these inside
// [ErrStoreUnavailable] when an execute or scan fails, so callers matching
// either sentinel succeed. [ErrBuildingSQLQuery] is the exception: a query
// that cannot be built points at a programming mistake, not an outage, and is
// returned on its own.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when a single result row cannot be scanned
	// into the target model.
	ErrScanningRow = errors.New("error scanning row")

	// ErrScanningRows is returned when iteration over a multi-row result set
	// fails after the rows were returned successfully.
	ErrScanningRows = errors.New("error scanning rows")
)
