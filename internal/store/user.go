package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/trancendos/alervato/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store, hashing the plaintext password
	// internally, and links the user's roles.
	// Returns ErrUsernameExists or ErrEmailExists on unique violations.
	// Returns validation errors from the domain User if data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID, roles included.
	// Returns ErrUserNotFound if the user does not exist.
	// The returned user never contains the plaintext password.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByUsername retrieves a user by their username, roles included.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// ExistsByUsername reports whether a user with the given username exists.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// ExistsByEmail reports whether a user with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Update modifies an existing user's profile fields. If a new plaintext
	// Password is set it is hashed and the stored hash replaced.
	// Returns ErrUserNotFound if the user does not exist.
	Update(ctx context.Context, user *domain.User) error

	// WithTx returns a UserStore that runs against the provided transaction.
	// The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) UserStore
}

// RoleStore defines the interface for role lookups. Roles are seeded by
// migration and never created through the application.
type RoleStore interface {
	// GetByName retrieves the role with the given name.
	// Returns ErrRoleNotFound unless it resolves to exactly one role.
	GetByName(ctx context.Context, name string) (*domain.Role, error)

	// WithTx returns a RoleStore that runs against the provided transaction.
	WithTx(tx *sql.Tx) RoleStore
}
