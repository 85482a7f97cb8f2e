// Package service provides application-level services for authentication,
// transactions, cost approvals, service offerings, and analytics.
package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// Callers check for these with errors.Is(); the API layer maps them to HTTP
// status codes.
var (
	// ErrUsernameTaken indicates a registration attempt with a username that
	// already belongs to another account.
	// API layer should map this to HTTP 409 Conflict.
	ErrUsernameTaken = errors.New("username is already taken")

	// ErrEmailTaken indicates a registration attempt with an email address
	// that already belongs to another account.
	// API layer should map this to HTTP 409 Conflict.
	ErrEmailTaken = errors.New("email is already in use")

	// ErrInvalidCredentials indicates a login failure. It deliberately does
	// not distinguish between an unknown username, a wrong password, and a
	// deactivated account.
	// API layer should map this to HTTP 401 Unauthorized.
	ErrInvalidCredentials = errors.New("invalid username or password")
)
