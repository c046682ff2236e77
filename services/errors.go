package services

import "errors"

// Failure classes surfaced by the stores. Handlers map these to HTTP status
// codes with errors.Is.
var (
	// ErrAuthFailure covers wrong credentials and pending accounts alike;
	// callers are not told which.
	ErrAuthFailure = errors.New("invalid credentials or account not approved")

	// ErrNoSession is returned by operations that require a logged-in account.
	ErrNoSession = errors.New("no active session")

	ErrNotFound = errors.New("record not found")

	// ErrPersistence wraps a failed read or write of the durable store. On a
	// failed write the in-memory collection has already changed; there is no
	// rollback.
	ErrPersistence = errors.New("persistence failure")

	// ErrCorruptState means stored bytes did not parse into the expected
	// collection shape. The data is never silently discarded.
	ErrCorruptState = errors.New("corrupt persisted state")
)
