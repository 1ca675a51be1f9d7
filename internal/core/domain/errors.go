package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrRemoteNotConfigured indicates no remote directory source is set up.
	// The app still works from the cache and the bundled dataset.
	ErrRemoteNotConfigured = errors.New("remote source not configured")

	// ErrRemoteUnavailable indicates the remote directory source could not
	// be reached. Cached or bundled data should be served instead.
	ErrRemoteUnavailable = errors.New("remote source unavailable")

	// ErrDirectoryEmpty indicates no directory data is available from the
	// cache, the remote source, or the bundled dataset.
	ErrDirectoryEmpty = errors.New("directory data unavailable")

	// ErrRateLimited indicates the remote API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")

	// Authentication errors.

	// ErrNotSignedIn indicates an operation requires a signed-in user.
	ErrNotSignedIn = errors.New("not signed in")

	// ErrAuthExpired indicates the session has expired and refresh failed.
	ErrAuthExpired = errors.New("authentication expired")

	// ErrAuthInvalid indicates the authentication credentials are invalid.
	ErrAuthInvalid = errors.New("authentication invalid")
)
