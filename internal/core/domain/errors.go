package domain

import "errors"

// Domain errors represent failures of normalisation and lookup.
// Infrastructure adapters wrap or unwrap to these.
var (
	// ErrNotFound indicates a requested user or repository does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown resource kind.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrRateLimited indicates the upstream API quota is exhausted.
	ErrRateLimited = errors.New("rate limited")

	// ErrAuthInvalid indicates the configured token was rejected.
	ErrAuthInvalid = errors.New("authentication invalid")
)
