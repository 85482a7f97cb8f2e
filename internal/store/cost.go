package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/trancendos/alervato/internal/domain"
)

// CostStore defines the interface for cost record persistence.
type CostStore interface {
	// Create saves a new cost record.
	// Returns validation errors from the domain Cost if data is invalid.
	Create(ctx context.Context, cost *domain.Cost) error

	// GetByID retrieves a cost record by its unique ID.
	// Returns ErrCostNotFound if the record does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Cost, error)

	// List retrieves all cost records, newest first.
	List(ctx context.Context) ([]*domain.Cost, error)

	// Update persists the current state of an existing cost record.
	// Returns ErrCostNotFound if the record does not exist. Concurrent
	// writers are serialized by the database row lock; the last commit wins.
	Update(ctx context.Context, cost *domain.Cost) error

	// WithTx returns a CostStore that runs against the provided transaction.
	WithTx(tx *sql.Tx) CostStore
}
