package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType classifies a financial transaction.
type TransactionType string

// Possible transaction types.
const (
	TransactionTypeIncome   TransactionType = "INCOME"
	TransactionTypeExpense  TransactionType = "EXPENSE"
	TransactionTypeTransfer TransactionType = "TRANSFER"
)

// Common validation errors for Transaction.
var (
	ErrEmptyTransactionID     = errors.New("transaction ID cannot be empty")
	ErrEmptyTransactionUserID = errors.New("transaction user ID cannot be empty")
	ErrNonPositiveAmount      = errors.New("transaction amount must be greater than zero")
	ErrAmountPrecision        = errors.New("transaction amount cannot have more than two decimal places")
	ErrInvalidTransactionType = errors.New("invalid transaction type")
)

// Transaction represents a single financial transaction owned by exactly
// one user. Only the owning user may read or modify it.
type Transaction struct {
	ID              uuid.UUID       `json:"id"`
	UserID          uuid.UUID       `json:"user_id"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description,omitempty"`
	Type            TransactionType `json:"type"`
	Category        string          `json:"category,omitempty"`
	TransactionDate time.Time       `json:"transaction_date"`
	ReferenceNumber string          `json:"reference_number,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// NewTransaction creates a new Transaction owned by the given user. The
// transaction date defaults to the current time when the zero value is
// passed. Returns an error if validation fails.
func NewTransaction(
	userID uuid.UUID,
	amount decimal.Decimal,
	txType TransactionType,
	description, category string,
	transactionDate time.Time,
) (*Transaction, error) {
	now := time.Now().UTC()
	if transactionDate.IsZero() {
		transactionDate = now
	}

	txn := &Transaction{
		ID:              uuid.New(),
		UserID:          userID,
		Amount:          amount,
		Description:     description,
		Type:            txType,
		Category:        category,
		TransactionDate: transactionDate,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := txn.Validate(); err != nil {
		return nil, err
	}

	return txn, nil
}

// Validate checks if the Transaction has valid data.
// Returns an error if any field fails validation.
func (t *Transaction) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTransactionID
	}

	if t.UserID == uuid.Nil {
		return ErrEmptyTransactionUserID
	}

	if !t.Amount.IsPositive() {
		return ErrNonPositiveAmount
	}

	// Monetary amounts are stored with cent precision.
	if !t.Amount.Equal(t.Amount.Round(2)) {
		return ErrAmountPrecision
	}

	if !isValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}

	return nil
}

// isValidTransactionType checks if the given type is a valid TransactionType.
func isValidTransactionType(txType TransactionType) bool {
	switch txType {
	case TransactionTypeIncome, TransactionTypeExpense, TransactionTypeTransfer:
		return true
	default:
		return false
	}
}
