package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/trancendos/alervato/internal/domain"
)

// TransactionSummary aggregates a user's transactions over a window,
// used by the analytics overview.
type TransactionSummary struct {
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	Count         int
}

// CategoryTotal is the spend total for a single category.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// DailyTotal is a user's expense total for a single calendar day.
type DailyTotal struct {
	Day   time.Time
	Total decimal.Decimal
}

// MonthlyTotal aggregates a user's income and expenses for one calendar
// month, identified as "YYYY-MM".
type MonthlyTotal struct {
	Month    string          `json:"month"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}

// CategorySummary describes a user's spending within one category.
type CategorySummary struct {
	Category string
	Total    decimal.Decimal
	Count    int
	Average  decimal.Decimal
}

// TransactionStore defines the interface for transaction data persistence.
// All read and write paths are scoped to the owning user; lookups never
// reveal whether a foreign record exists.
type TransactionStore interface {
	// Create saves a new transaction.
	// Returns ErrReferenceNumberExists if the reference number is taken.
	// Returns validation errors from the domain Transaction if data is invalid.
	Create(ctx context.Context, txn *domain.Transaction) error

	// GetByIDForUser retrieves a transaction by ID, constrained to the given
	// owner. Returns ErrTransactionNotFound when the transaction does not
	// exist or belongs to another user.
	GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (*domain.Transaction, error)

	// ListByUser retrieves a page of the user's transactions ordered by
	// transaction date, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Transaction, error)

	// CountByUser returns the total number of transactions the user owns.
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)

	// Update overwrites the mutable fields of an existing transaction owned
	// by the given user. Returns ErrTransactionNotFound when the transaction
	// does not exist or belongs to another user.
	Update(ctx context.Context, txn *domain.Transaction) error

	// Delete removes a transaction owned by the given user.
	// Returns ErrTransactionNotFound when the transaction does not exist or
	// belongs to another user.
	Delete(ctx context.Context, id, userID uuid.UUID) error

	// Summarize aggregates the user's income, expenses, and transaction
	// count since the given time.
	Summarize(ctx context.Context, userID uuid.UUID, since time.Time) (*TransactionSummary, error)

	// TopExpenseCategories returns the user's highest-spend categories since
	// the given time, largest first.
	TopExpenseCategories(ctx context.Context, userID uuid.UUID, since time.Time, limit int) ([]CategoryTotal, error)

	// DailyExpenseTotals returns the user's expense total per calendar day
	// since the given time, oldest first. Days without expenses are absent.
	DailyExpenseTotals(ctx context.Context, userID uuid.UUID, since time.Time) ([]DailyTotal, error)

	// MonthlyTotals returns the user's income and expense totals per
	// calendar month since the given time, oldest first.
	MonthlyTotals(ctx context.Context, userID uuid.UUID, since time.Time) ([]MonthlyTotal, error)

	// CategorySummaries returns per-category expense totals, counts, and
	// averages since the given time, largest total first.
	CategorySummaries(ctx context.Context, userID uuid.UUID, since time.Time) ([]CategorySummary, error)

	// WithTx returns a TransactionStore that runs against the provided
	// transaction.
	WithTx(tx *sql.Tx) TransactionStore
}
