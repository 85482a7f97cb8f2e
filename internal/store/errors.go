package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. Entity-specific variants below wrap it.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a user with the same username).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored. Check the wrapped error for specifics.
	ErrInvalidEntity = errors.New("invalid entity")

	// Entity-specific "not found" errors.

	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrRoleNotFound indicates that the requested role does not exist.
	// Registration depends on the default role resolving to exactly one row.
	ErrRoleNotFound = fmt.Errorf("%w: role", ErrNotFound)

	// ErrTransactionNotFound indicates that the requested transaction does
	// not exist. It is also returned when a transaction exists but belongs
	// to another user, so callers cannot distinguish the two cases.
	ErrTransactionNotFound = fmt.Errorf("%w: transaction", ErrNotFound)

	// ErrCostNotFound indicates that the requested cost record does not exist.
	ErrCostNotFound = fmt.Errorf("%w: cost", ErrNotFound)

	// ErrOfferingNotFound indicates that the requested service offering does
	// not exist.
	ErrOfferingNotFound = fmt.Errorf("%w: service offering", ErrNotFound)

	// Entity-specific "duplicate" errors.

	// ErrUsernameExists indicates that a user with the given username
	// already exists.
	ErrUsernameExists = fmt.Errorf("%w: username", ErrDuplicate)

	// ErrEmailExists indicates that a user with the given email already
	// exists.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)

	// ErrReferenceNumberExists indicates that a transaction with the given
	// reference number already exists.
	ErrReferenceNumberExists = fmt.Errorf("%w: reference number", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
