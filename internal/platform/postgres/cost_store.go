package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"
	"github.com/trancendos/alervato/internal/domain"
	"github.com/trancendos/alervato/internal/platform/logger"
	"github.com/trancendos/alervato/internal/store"
)

// CostStore implements the store.CostStore interface using PostgreSQL.
type CostStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewCostStore creates a new PostgreSQL implementation of store.CostStore.
func NewCostStore(db store.DBTX, logger *slog.Logger) *CostStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &CostStore{
		db:     db,
		logger: logger.With(slog.String("component", "cost_store")),
	}
}

var _ store.CostStore = (*CostStore)(nil)

// Create implements store.CostStore.Create.
func (s *CostStore) Create(ctx context.Context, cost *domain.Cost) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := cost.Validate(); err != nil {
		log.Warn("cost validation failed during create",
			slog.String("error", err.Error()),
			slog.String("cost_id", cost.ID.String()))
		return err
	}

	query := `
		INSERT INTO costs (id, service_name, cost_details, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		cost.ID,
		cost.ServiceName,
		nullableString(cost.CostDetails),
		string(cost.Status),
		cost.CreatedAt,
		cost.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to create cost",
			slog.String("error", err.Error()),
			slog.String("cost_id", cost.ID.String()))
		return MapError(err)
	}

	log.Info("cost created successfully",
		slog.String("cost_id", cost.ID.String()),
		slog.String("status", string(cost.Status)))
	return nil
}

// GetByID implements store.CostStore.GetByID.
func (s *CostStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Cost, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, service_name, cost_details, status, created_at, updated_at
		FROM costs
		WHERE id = $1
	`

	var cost domain.Cost
	var costDetails sql.NullString
	var status string

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&cost.ID,
		&cost.ServiceName,
		&costDetails,
		&status,
		&cost.CreatedAt,
		&cost.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Debug("cost not found", slog.String("cost_id", id.String()))
			return nil, store.ErrCostNotFound
		}
		log.Error("failed to get cost by ID",
			slog.String("error", err.Error()),
			slog.String("cost_id", id.String()))
		return nil, MapError(err)
	}

	cost.CostDetails = costDetails.String
	cost.Status = domain.CostStatus(status)

	return &cost, nil
}

// List implements store.CostStore.List.
func (s *CostStore) List(ctx context.Context) ([]*domain.Cost, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, service_name, cost_details, status, created_at, updated_at
		FROM costs
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query costs", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var costs []*domain.Cost
	for rows.Next() {
		var cost domain.Cost
		var costDetails sql.NullString
		var status string

		err := rows.Scan(
			&cost.ID,
			&cost.ServiceName,
			&costDetails,
			&status,
			&cost.CreatedAt,
			&cost.UpdatedAt,
		)
		if err != nil {
			log.Error("failed to scan cost row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}

		cost.CostDetails = costDetails.String
		cost.Status = domain.CostStatus(status)
		costs = append(costs, &cost)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	if costs == nil {
		costs = []*domain.Cost{}
	}

	return costs, nil
}

// Update implements store.CostStore.Update.
func (s *CostStore) Update(ctx context.Context, cost *domain.Cost) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := cost.Validate(); err != nil {
		log.Warn("cost validation failed during update",
			slog.String("error", err.Error()),
			slog.String("cost_id", cost.ID.String()))
		return err
	}

	query := `
		UPDATE costs
		SET service_name = $1, cost_details = $2, status = $3, updated_at = $4
		WHERE id = $5
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		cost.ServiceName,
		nullableString(cost.CostDetails),
		string(cost.Status),
		cost.UpdatedAt,
		cost.ID,
	)
	if err != nil {
		log.Error("failed to update cost",
			slog.String("error", err.Error()),
			slog.String("cost_id", cost.ID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrCostNotFound); err != nil {
		return err
	}

	log.Info("cost updated successfully",
		slog.String("cost_id", cost.ID.String()),
		slog.String("status", string(cost.Status)))
	return nil
}

// WithTx implements store.CostStore.WithTx.
func (s *CostStore) WithTx(tx *sql.Tx) store.CostStore {
	return &CostStore{
		db:     tx,
		logger: s.logger,
	}
}
