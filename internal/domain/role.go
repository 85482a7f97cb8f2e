package domain

import (
	"errors"

	"github.com/google/uuid"
)

// Well-known role names. Roles are seeded by migration and referenced,
// not owned, by users.
const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)

// Common validation errors for Role.
var (
	ErrEmptyRoleID   = errors.New("role ID cannot be empty")
	ErrEmptyRoleName = errors.New("role name cannot be empty")
)

// Role represents a named authority a user can hold. A role's lifetime is
// independent of any user.
type Role struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Validate checks if the Role has valid data.
func (r *Role) Validate() error {
	if r.ID == uuid.Nil {
		return ErrEmptyRoleID
	}
	if r.Name == "" {
		return ErrEmptyRoleName
	}
	return nil
}
