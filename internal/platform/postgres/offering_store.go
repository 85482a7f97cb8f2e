package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/trancendos/alervato/internal/domain"
	"github.com/trancendos/alervato/internal/platform/logger"
	"github.com/trancendos/alervato/internal/store"
)

// OfferingStore implements the store.OfferingStore interface using PostgreSQL.
type OfferingStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewOfferingStore creates a new PostgreSQL implementation of
// store.OfferingStore.
func NewOfferingStore(db store.DBTX, logger *slog.Logger) *OfferingStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &OfferingStore{
		db:     db,
		logger: logger.With(slog.String("component", "offering_store")),
	}
}

var _ store.OfferingStore = (*OfferingStore)(nil)

// Create implements store.OfferingStore.Create.
func (s *OfferingStore) Create(ctx context.Context, offering *domain.ServiceOffering) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := offering.Validate(); err != nil {
		log.Warn("offering validation failed during create",
			slog.String("error", err.Error()),
			slog.String("offering_id", offering.ID.String()))
		return err
	}

	query := `
		INSERT INTO service_offerings (id, name, description, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		offering.ID,
		offering.Name,
		nullableString(offering.Description),
		offering.Price,
		offering.CreatedAt,
		offering.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to create service offering",
			slog.String("error", err.Error()),
			slog.String("offering_id", offering.ID.String()))
		return MapError(err)
	}

	log.Info("service offering created successfully",
		slog.String("offering_id", offering.ID.String()),
		slog.String("name", offering.Name))
	return nil
}

// List implements store.OfferingStore.List.
func (s *OfferingStore) List(ctx context.Context) ([]*domain.ServiceOffering, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, description, price, created_at, updated_at
		FROM service_offerings
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query service offerings",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var offerings []*domain.ServiceOffering
	for rows.Next() {
		var offering domain.ServiceOffering
		var description sql.NullString

		err := rows.Scan(
			&offering.ID,
			&offering.Name,
			&description,
			&offering.Price,
			&offering.CreatedAt,
			&offering.UpdatedAt,
		)
		if err != nil {
			log.Error("failed to scan offering row",
				slog.String("error", err.Error()))
			return nil, MapError(err)
		}

		offering.Description = description.String
		offerings = append(offerings, &offering)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	if offerings == nil {
		offerings = []*domain.ServiceOffering{}
	}

	return offerings, nil
}

// WithTx implements store.OfferingStore.WithTx.
func (s *OfferingStore) WithTx(tx *sql.Tx) store.OfferingStore {
	return &OfferingStore{
		db:     tx,
		logger: s.logger,
	}
}
