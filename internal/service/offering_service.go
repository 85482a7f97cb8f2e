package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/trancendos/alervato/internal/domain"
	"github.com/trancendos/alervato/internal/platform/logger"
	"github.com/trancendos/alervato/internal/store"
)

// OfferingInput carries the caller-supplied fields of a service offering.
type OfferingInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
}

// OfferingService provides customer service offering operations.
type OfferingService interface {
	// List retrieves all service offerings, newest first.
	List(ctx context.Context) ([]*domain.ServiceOffering, error)

	// Create saves a new service offering.
	Create(ctx context.Context, input OfferingInput) (*domain.ServiceOffering, error)
}

// offeringServiceImpl implements the OfferingService interface.
type offeringServiceImpl struct {
	offeringStore store.OfferingStore
	logger        *slog.Logger
}

// NewOfferingService creates a new OfferingService.
func NewOfferingService(offeringStore store.OfferingStore, logger *slog.Logger) OfferingService {
	return &offeringServiceImpl{
		offeringStore: offeringStore,
		logger:        logger.With(slog.String("component", "offering_service")),
	}
}

// List implements OfferingService.List.
func (s *offeringServiceImpl) List(ctx context.Context) ([]*domain.ServiceOffering, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	offerings, err := s.offeringStore.List(ctx)
	if err != nil {
		log.Error("failed to list service offerings",
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list service offerings: %w", err)
	}

	return offerings, nil
}

// Create implements OfferingService.Create.
func (s *offeringServiceImpl) Create(ctx context.Context, input OfferingInput) (*domain.ServiceOffering, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	offering, err := domain.NewServiceOffering(input.Name, input.Description, input.Price)
	if err != nil {
		log.Debug("rejected invalid service offering data",
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("invalid service offering data: %w", err)
	}

	if err := s.offeringStore.Create(ctx, offering); err != nil {
		log.Error("failed to create service offering",
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create service offering: %w", err)
	}

	log.Info("service offering created successfully",
		slog.String("offering_id", offering.ID.String()),
		slog.String("name", offering.Name))

	return offering, nil
}
