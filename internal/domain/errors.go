package domain

import "errors"

// Tagged error kinds. Services wrap these with %w so the request layer can
// map them to status codes with errors.Is instead of re-parsing messages.
var (
	// ErrInvalidInput marks malformed input shapes (bad email, rejected
	// connection-string scheme, missing required fields).
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized marks missing or invalid sessions and bad credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound covers both nonexistent records and records owned by
	// another administrator; the two are deliberately indistinguishable.
	ErrNotFound = errors.New("not found")

	// ErrUpstream marks any failure reaching or operating on a shop's
	// external store. The cause is not distinguished for the caller.
	ErrUpstream = errors.New("failed to reach shop data")
)
