// Package common defines shared constants and sentinel errors used across
// client and server layers of the bank. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// ErrorConflict marks a uniqueness violation (e.g. duplicate login).
	// The wire protocol collapses it into a generic server error, the
	// distinction is kept for internal logging only.
	ErrorConflict = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Auth errors (invalid, malformed or expired token).
	ErrInvalidToken = errors.New("invalid token")
)
