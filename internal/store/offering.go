package store

import (
	"context"
	"database/sql"

	"github.com/trancendos/alervato/internal/domain"
)

// OfferingStore defines the interface for service offering persistence.
type OfferingStore interface {
	// Create saves a new service offering.
	// Returns validation errors from the domain ServiceOffering if data is
	// invalid.
	Create(ctx context.Context, offering *domain.ServiceOffering) error

	// List retrieves all service offerings, newest first.
	List(ctx context.Context) ([]*domain.ServiceOffering, error)

	// WithTx returns an OfferingStore that runs against the provided
	// transaction.
	WithTx(tx *sql.Tx) OfferingStore
}
