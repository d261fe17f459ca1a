package github

import "errors"

// Common GitHub API errors.
var (
	// ErrNotFound is returned when the repository, branch or file path
	// does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is returned when authentication fails.
	ErrUnauthorized = errors.New("unauthorized — check your GitHub token")
	// ErrForbidden is returned when authorization fails.
	ErrForbidden = errors.New("forbidden — token may lack required scope (needs 'repo')")
	// ErrConflict is returned when a write supplies a stale blob SHA,
	// i.e. the file was modified by another writer in the meantime.
	ErrConflict = errors.New("conflict — file changed upstream")
)
