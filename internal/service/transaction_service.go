package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/trancendos/alervato/internal/domain"
	"github.com/trancendos/alervato/internal/platform/logger"
	"github.com/trancendos/alervato/internal/store"
)

// Pagination bounds for transaction listings. MaxPage keeps the computed
// OFFSET (page*size) well inside int range for garbage page values.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	MaxPage         = 1_000_000
)

// TransactionInput carries the caller-supplied fields of a transaction.
// The zero TransactionDate means "now".
type TransactionInput struct {
	Amount          decimal.Decimal
	Description     string
	Type            domain.TransactionType
	Category        string
	TransactionDate time.Time
	ReferenceNumber string
}

// TransactionPage is a single page of a user's transactions.
type TransactionPage struct {
	Items      []*domain.Transaction
	Page       int
	Size       int
	TotalItems int
	TotalPages int
}

// TransactionService provides owner-scoped transaction operations.
// Every operation takes the authenticated user's ID; records belonging to
// other users are reported as not found.
type TransactionService interface {
	// List retrieves a page of the user's transactions, newest first.
	// Page is zero-based and clamped to [0, MaxPage]; size is clamped to
	// [1, MaxPageSize] and defaults to DefaultPageSize when non-positive.
	List(ctx context.Context, userID uuid.UUID, page, size int) (*TransactionPage, error)

	// Create saves a new transaction owned by the user.
	Create(ctx context.Context, userID uuid.UUID, input TransactionInput) (*domain.Transaction, error)

	// Get retrieves one of the user's transactions by ID.
	// Returns store.ErrTransactionNotFound when the record does not exist
	// or belongs to another user.
	Get(ctx context.Context, id, userID uuid.UUID) (*domain.Transaction, error)

	// Update overwrites the mutable fields of one of the user's
	// transactions. Same ownership rule as Get.
	Update(ctx context.Context, id, userID uuid.UUID, input TransactionInput) (*domain.Transaction, error)

	// Delete removes one of the user's transactions. Same ownership rule
	// as Get.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

// transactionServiceImpl implements the TransactionService interface.
type transactionServiceImpl struct {
	transactionStore store.TransactionStore
	logger           *slog.Logger
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(transactionStore store.TransactionStore, logger *slog.Logger) TransactionService {
	return &transactionServiceImpl{
		transactionStore: transactionStore,
		logger:           logger.With(slog.String("component", "transaction_service")),
	}
}

// List implements TransactionService.List.
func (s *transactionServiceImpl) List(
	ctx context.Context,
	userID uuid.UUID,
	page, size int,
) (*TransactionPage, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if page < 0 {
		page = 0
	}
	if page > MaxPage {
		page = MaxPage
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}

	total, err := s.transactionStore.CountByUser(ctx, userID)
	if err != nil {
		log.Error("failed to count transactions",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to count transactions: %w", err)
	}

	items, err := s.transactionStore.ListByUser(ctx, userID, size, page*size)
	if err != nil {
		log.Error("failed to list transactions",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + size - 1) / size
	}

	log.Debug("listed transactions",
		slog.String("user_id", userID.String()),
		slog.Int("page", page),
		slog.Int("count", len(items)))

	return &TransactionPage{
		Items:      items,
		Page:       page,
		Size:       size,
		TotalItems: total,
		TotalPages: totalPages,
	}, nil
}

// Create implements TransactionService.Create.
func (s *transactionServiceImpl) Create(
	ctx context.Context,
	userID uuid.UUID,
	input TransactionInput,
) (*domain.Transaction, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	txn, err := domain.NewTransaction(
		userID,
		input.Amount,
		input.Type,
		input.Description,
		input.Category,
		input.TransactionDate,
	)
	if err != nil {
		log.Debug("rejected invalid transaction data",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, fmt.Errorf("invalid transaction data: %w", err)
	}
	txn.ReferenceNumber = input.ReferenceNumber

	if err := s.transactionStore.Create(ctx, txn); err != nil {
		if errors.Is(err, store.ErrReferenceNumberExists) {
			log.Debug("attempted to create transaction with duplicate reference number",
				slog.String("user_id", userID.String()))
		} else {
			log.Error("failed to create transaction",
				slog.String("error", err.Error()),
				slog.String("user_id", userID.String()))
		}
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	log.Info("transaction created successfully",
		slog.String("transaction_id", txn.ID.String()),
		slog.String("user_id", userID.String()))

	return txn, nil
}

// Get implements TransactionService.Get.
func (s *transactionServiceImpl) Get(ctx context.Context, id, userID uuid.UUID) (*domain.Transaction, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	txn, err := s.transactionStore.GetByIDForUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, store.ErrTransactionNotFound) {
			log.Debug("transaction not found for user",
				slog.String("transaction_id", id.String()),
				slog.String("user_id", userID.String()))
		} else {
			log.Error("failed to retrieve transaction",
				slog.String("error", err.Error()),
				slog.String("transaction_id", id.String()))
		}
		return nil, fmt.Errorf("failed to retrieve transaction: %w", err)
	}

	return txn, nil
}

// Update implements TransactionService.Update.
func (s *transactionServiceImpl) Update(
	ctx context.Context,
	id, userID uuid.UUID,
	input TransactionInput,
) (*domain.Transaction, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	txn, err := s.transactionStore.GetByIDForUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, store.ErrTransactionNotFound) {
			log.Debug("transaction not found for update",
				slog.String("transaction_id", id.String()),
				slog.String("user_id", userID.String()))
		} else {
			log.Error("failed to retrieve transaction for update",
				slog.String("error", err.Error()),
				slog.String("transaction_id", id.String()))
		}
		return nil, fmt.Errorf("failed to retrieve transaction for update: %w", err)
	}

	txn.Amount = input.Amount
	txn.Description = input.Description
	txn.Type = input.Type
	txn.Category = input.Category
	if !input.TransactionDate.IsZero() {
		txn.TransactionDate = input.TransactionDate
	}
	txn.ReferenceNumber = input.ReferenceNumber
	txn.UpdatedAt = time.Now().UTC()

	if err := txn.Validate(); err != nil {
		log.Debug("rejected invalid transaction update",
			slog.String("error", err.Error()),
			slog.String("transaction_id", id.String()))
		return nil, fmt.Errorf("invalid transaction data: %w", err)
	}

	if err := s.transactionStore.Update(ctx, txn); err != nil {
		log.Error("failed to update transaction",
			slog.String("error", err.Error()),
			slog.String("transaction_id", id.String()))
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	log.Info("transaction updated successfully",
		slog.String("transaction_id", txn.ID.String()),
		slog.String("user_id", userID.String()))

	return txn, nil
}

// Delete implements TransactionService.Delete.
func (s *transactionServiceImpl) Delete(ctx context.Context, id, userID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.transactionStore.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, store.ErrTransactionNotFound) {
			log.Debug("transaction not found for delete",
				slog.String("transaction_id", id.String()),
				slog.String("user_id", userID.String()))
		} else {
			log.Error("failed to delete transaction",
				slog.String("error", err.Error()),
				slog.String("transaction_id", id.String()))
		}
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	log.Info("transaction deleted successfully",
		slog.String("transaction_id", id.String()),
		slog.String("user_id", userID.String()))

	return nil
}
