package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/trancendos/alervato/internal/domain"
	"github.com/trancendos/alervato/internal/platform/logger"
	"github.com/trancendos/alervato/internal/store"
)

// CostInput carries the caller-supplied fields of a cost record.
type CostInput struct {
	ServiceName string
	CostDetails string
}

// CostService provides cost record operations and the approval workflow.
// Approve and Reject are unconditional: they overwrite whatever status the
// record currently has, and concurrent decisions resolve last-write-wins.
type CostService interface {
	// List retrieves all cost records, newest first.
	List(ctx context.Context) ([]*domain.Cost, error)

	// Create saves a new cost record in the PENDING state.
	Create(ctx context.Context, input CostInput) (*domain.Cost, error)

	// Approve marks the cost record APPROVED and returns the updated record.
	// Returns store.ErrCostNotFound for an unknown id.
	Approve(ctx context.Context, id uuid.UUID) (*domain.Cost, error)

	// Reject marks the cost record REJECTED and returns the updated record.
	// Returns store.ErrCostNotFound for an unknown id.
	Reject(ctx context.Context, id uuid.UUID) (*domain.Cost, error)
}

// costServiceImpl implements the CostService interface.
type costServiceImpl struct {
	costStore store.CostStore
	logger    *slog.Logger
}

// NewCostService creates a new CostService.
func NewCostService(costStore store.CostStore, logger *slog.Logger) CostService {
	return &costServiceImpl{
		costStore: costStore,
		logger:    logger.With(slog.String("component", "cost_service")),
	}
}

// List implements CostService.List.
func (s *costServiceImpl) List(ctx context.Context) ([]*domain.Cost, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	costs, err := s.costStore.List(ctx)
	if err != nil {
		log.Error("failed to list cost records",
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list cost records: %w", err)
	}

	return costs, nil
}

// Create implements CostService.Create.
func (s *costServiceImpl) Create(ctx context.Context, input CostInput) (*domain.Cost, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	cost, err := domain.NewCost(input.ServiceName, input.CostDetails)
	if err != nil {
		log.Debug("rejected invalid cost data",
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("invalid cost data: %w", err)
	}

	if err := s.costStore.Create(ctx, cost); err != nil {
		log.Error("failed to create cost record",
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create cost record: %w", err)
	}

	log.Info("cost record created successfully",
		slog.String("cost_id", cost.ID.String()),
		slog.String("service_name", cost.ServiceName))

	return cost, nil
}

// Approve implements CostService.Approve.
func (s *costServiceImpl) Approve(ctx context.Context, id uuid.UUID) (*domain.Cost, error) {
	return s.decide(ctx, id, "approve", (*domain.Cost).Approve)
}

// Reject implements CostService.Reject.
func (s *costServiceImpl) Reject(ctx context.Context, id uuid.UUID) (*domain.Cost, error) {
	return s.decide(ctx, id, "reject", (*domain.Cost).Reject)
}

// decide loads the cost record, applies the status transition, and persists
// the result. The transition itself never fails; only the lookup and the
// write can.
func (s *costServiceImpl) decide(
	ctx context.Context,
	id uuid.UUID,
	operation string,
	transition func(*domain.Cost),
) (*domain.Cost, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	cost, err := s.costStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrCostNotFound) {
			log.Debug("cost record not found",
				slog.String("cost_id", id.String()),
				slog.String("operation", operation))
		} else {
			log.Error("failed to retrieve cost record",
				slog.String("error", err.Error()),
				slog.String("cost_id", id.String()))
		}
		return nil, fmt.Errorf("failed to retrieve cost record: %w", err)
	}

	previous := cost.Status
	transition(cost)

	if err := s.costStore.Update(ctx, cost); err != nil {
		log.Error("failed to persist cost decision",
			slog.String("error", err.Error()),
			slog.String("cost_id", id.String()),
			slog.String("operation", operation))
		return nil, fmt.Errorf("failed to persist cost decision: %w", err)
	}

	log.Info("cost decision recorded",
		slog.String("cost_id", cost.ID.String()),
		slog.String("operation", operation),
		slog.String("previous_status", string(previous)),
		slog.String("status", string(cost.Status)))

	return cost, nil
}
