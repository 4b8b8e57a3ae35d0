// Package apperrors defines the sentinel errors shared across services and
// handlers. Services wrap these with context via fmt.Errorf("%w: ...");
// handlers match with errors.Is to pick an HTTP status.
package apperrors

import "errors"

var (
	// ErrValidation marks a malformed or missing field, or an unknown
	// enum value. No mutation is performed.
	ErrValidation = errors.New("validation failed")

	// ErrUnauthorized marks a missing, expired or malformed credential.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden marks a role or ownership mismatch.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound marks a referenced user, donor or request that does
	// not exist.
	ErrNotFound = errors.New("not found")

	// ErrEmailTaken marks a registration against an email that is
	// already in use.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials marks a failed login.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUnavailable marks a transient store failure (timeout,
	// connectivity). The whole operation is safe to retry.
	ErrUnavailable = errors.New("store unavailable")
)
