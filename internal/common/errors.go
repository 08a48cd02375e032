// Package common defines shared constants and sentinel errors used across
// client and server layers of lexico. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorConflict     = errors.New("identity already in use")
	ErrorValidation   = errors.New("validation error")

	// Infrastructure errors. The store could not be reached or timed out;
	// safe to retry with backoff.
	ErrorUnavailable = errors.New("store unavailable")

	// Auth errors (invalid, malformed or expired token).
	ErrInvalidToken = errors.New("invalid token")
)
