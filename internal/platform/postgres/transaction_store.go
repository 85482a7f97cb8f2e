package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/trancendos/alervato/internal/domain"
	"github.com/trancendos/alervato/internal/platform/logger"
	"github.com/trancendos/alervato/internal/store"
)

// Unique constraint name from the transactions table migration.
const transactionsReferenceConstraint = "transactions_reference_number_key"

// TransactionStore implements the store.TransactionStore interface using
// PostgreSQL. Every query is scoped by user_id so ownership and existence
// are indistinguishable to callers.
type TransactionStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewTransactionStore creates a new PostgreSQL implementation of
// store.TransactionStore.
func NewTransactionStore(db store.DBTX, logger *slog.Logger) *TransactionStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &TransactionStore{
		db:     db,
		logger: logger.With(slog.String("component", "transaction_store")),
	}
}

var _ store.TransactionStore = (*TransactionStore)(nil)

// Create implements store.TransactionStore.Create.
func (s *TransactionStore) Create(ctx context.Context, txn *domain.Transaction) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := txn.Validate(); err != nil {
		log.Warn("transaction validation failed during create",
			slog.String("error", err.Error()),
			slog.String("transaction_id", txn.ID.String()))
		return err
	}

	query := `
		INSERT INTO transactions (id, user_id, amount, description, type,
			category, transaction_date, reference_number, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		txn.ID,
		txn.UserID,
		txn.Amount,
		nullableString(txn.Description),
		string(txn.Type),
		nullableString(txn.Category),
		txn.TransactionDate,
		nullableString(txn.ReferenceNumber),
		txn.CreatedAt,
		txn.UpdatedAt,
	)
	if err != nil {
		if UniqueConstraintName(err) == transactionsReferenceConstraint {
			log.Debug("duplicate reference number during transaction creation",
				slog.String("transaction_id", txn.ID.String()))
			return store.ErrReferenceNumberExists
		}
		log.Error("failed to create transaction",
			slog.String("error", err.Error()),
			slog.String("transaction_id", txn.ID.String()),
			slog.String("user_id", txn.UserID.String()))
		return MapError(err)
	}

	log.Info("transaction created successfully",
		slog.String("transaction_id", txn.ID.String()),
		slog.String("user_id", txn.UserID.String()),
		slog.String("type", string(txn.Type)))
	return nil
}

// GetByIDForUser implements store.TransactionStore.GetByIDForUser.
func (s *TransactionStore) GetByIDForUser(
	ctx context.Context,
	id, userID uuid.UUID,
) (*domain.Transaction, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, amount, description, type, category,
			transaction_date, reference_number, created_at, updated_at
		FROM transactions
		WHERE id = $1 AND user_id = $2
	`

	txn, err := scanTransaction(s.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			log.Debug("transaction not found for user",
				slog.String("transaction_id", id.String()),
				slog.String("user_id", userID.String()))
			return nil, store.ErrTransactionNotFound
		}
		log.Error("failed to get transaction",
			slog.String("error", err.Error()),
			slog.String("transaction_id", id.String()))
		return nil, MapError(err)
	}

	return txn, nil
}

// ListByUser implements store.TransactionStore.ListByUser.
func (s *TransactionStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
	limit, offset int,
) ([]*domain.Transaction, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT id, user_id, amount, description, type, category,
			transaction_date, reference_number, created_at, updated_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY transaction_date DESC, created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := s.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		log.Error("failed to query transactions",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var txns []*domain.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			log.Error("failed to scan transaction row",
				slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	if txns == nil {
		txns = []*domain.Transaction{}
	}

	return txns, nil
}

// CountByUser implements store.TransactionStore.CountByUser.
func (s *TransactionStore) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM transactions WHERE user_id = $1`
	if err := s.db.QueryRowContext(ctx, query, userID).Scan(&count); err != nil {
		return 0, MapError(err)
	}
	return count, nil
}

// Update implements store.TransactionStore.Update.
func (s *TransactionStore) Update(ctx context.Context, txn *domain.Transaction) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := txn.Validate(); err != nil {
		log.Warn("transaction validation failed during update",
			slog.String("error", err.Error()),
			slog.String("transaction_id", txn.ID.String()))
		return err
	}

	txn.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE transactions
		SET amount = $1, description = $2, type = $3, category = $4,
			transaction_date = $5, reference_number = $6, updated_at = $7
		WHERE id = $8 AND user_id = $9
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		txn.Amount,
		nullableString(txn.Description),
		string(txn.Type),
		nullableString(txn.Category),
		txn.TransactionDate,
		nullableString(txn.ReferenceNumber),
		txn.UpdatedAt,
		txn.ID,
		txn.UserID,
	)
	if err != nil {
		if UniqueConstraintName(err) == transactionsReferenceConstraint {
			return store.ErrReferenceNumberExists
		}
		log.Error("failed to update transaction",
			slog.String("error", err.Error()),
			slog.String("transaction_id", txn.ID.String()))
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrTransactionNotFound)
}

// Delete implements store.TransactionStore.Delete.
func (s *TransactionStore) Delete(ctx context.Context, id, userID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM transactions WHERE id = $1 AND user_id = $2`
	result, err := s.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		log.Error("failed to delete transaction",
			slog.String("error", err.Error()),
			slog.String("transaction_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrTransactionNotFound); err != nil {
		return err
	}

	log.Info("transaction deleted successfully",
		slog.String("transaction_id", id.String()),
		slog.String("user_id", userID.String()))
	return nil
}

// Summarize implements store.TransactionStore.Summarize.
func (s *TransactionStore) Summarize(
	ctx context.Context,
	userID uuid.UUID,
	since time.Time,
) (*store.TransactionSummary, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE type = 'INCOME'), 0),
			COALESCE(SUM(amount) FILTER (WHERE type = 'EXPENSE'), 0),
			COUNT(*)
		FROM transactions
		WHERE user_id = $1 AND transaction_date >= $2
	`

	var summary store.TransactionSummary
	err := s.db.QueryRowContext(ctx, query, userID, since).Scan(
		&summary.TotalIncome,
		&summary.TotalExpenses,
		&summary.Count,
	)
	if err != nil {
		log.Error("failed to summarize transactions",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}

	return &summary, nil
}

// TopExpenseCategories implements store.TransactionStore.TopExpenseCategories.
func (s *TransactionStore) TopExpenseCategories(
	ctx context.Context,
	userID uuid.UUID,
	since time.Time,
	limit int,
) ([]store.CategoryTotal, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if limit <= 0 {
		limit = 5
	}

	query := `
		SELECT COALESCE(category, 'Uncategorized'), SUM(amount) AS total
		FROM transactions
		WHERE user_id = $1 AND type = 'EXPENSE' AND transaction_date >= $2
		GROUP BY COALESCE(category, 'Uncategorized')
		ORDER BY total DESC
		LIMIT $3
	`

	rows, err := s.db.QueryContext(ctx, query, userID, since, limit)
	if err != nil {
		log.Error("failed to query top expense categories",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var totals []store.CategoryTotal
	for rows.Next() {
		var ct store.CategoryTotal
		if err := rows.Scan(&ct.Category, &ct.Total); err != nil {
			return nil, MapError(err)
		}
		totals = append(totals, ct)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	if totals == nil {
		totals = []store.CategoryTotal{}
	}

	return totals, nil
}

// DailyExpenseTotals implements store.TransactionStore.DailyExpenseTotals.
func (s *TransactionStore) DailyExpenseTotals(
	ctx context.Context,
	userID uuid.UUID,
	since time.Time,
) ([]store.DailyTotal, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT transaction_date::date AS day, SUM(amount)
		FROM transactions
		WHERE user_id = $1 AND type = 'EXPENSE' AND transaction_date >= $2
		GROUP BY day
		ORDER BY day
	`

	rows, err := s.db.QueryContext(ctx, query, userID, since)
	if err != nil {
		log.Error("failed to query daily expense totals",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var totals []store.DailyTotal
	for rows.Next() {
		var dt store.DailyTotal
		if err := rows.Scan(&dt.Day, &dt.Total); err != nil {
			return nil, MapError(err)
		}
		totals = append(totals, dt)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	if totals == nil {
		totals = []store.DailyTotal{}
	}

	return totals, nil
}

// MonthlyTotals implements store.TransactionStore.MonthlyTotals.
func (s *TransactionStore) MonthlyTotals(
	ctx context.Context,
	userID uuid.UUID,
	since time.Time,
) ([]store.MonthlyTotal, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT
			to_char(transaction_date, 'YYYY-MM') AS month,
			COALESCE(SUM(amount) FILTER (WHERE type = 'INCOME'), 0),
			COALESCE(SUM(amount) FILTER (WHERE type = 'EXPENSE'), 0)
		FROM transactions
		WHERE user_id = $1 AND transaction_date >= $2
		GROUP BY month
		ORDER BY month
	`

	rows, err := s.db.QueryContext(ctx, query, userID, since)
	if err != nil {
		log.Error("failed to query monthly totals",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var totals []store.MonthlyTotal
	for rows.Next() {
		var mt store.MonthlyTotal
		if err := rows.Scan(&mt.Month, &mt.Income, &mt.Expenses); err != nil {
			return nil, MapError(err)
		}
		totals = append(totals, mt)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	if totals == nil {
		totals = []store.MonthlyTotal{}
	}

	return totals, nil
}

// CategorySummaries implements store.TransactionStore.CategorySummaries.
func (s *TransactionStore) CategorySummaries(
	ctx context.Context,
	userID uuid.UUID,
	since time.Time,
) ([]store.CategorySummary, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT COALESCE(category, 'Uncategorized') AS category,
			SUM(amount) AS total, COUNT(*), AVG(amount)
		FROM transactions
		WHERE user_id = $1 AND type = 'EXPENSE' AND transaction_date >= $2
		GROUP BY COALESCE(category, 'Uncategorized')
		ORDER BY total DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID, since)
	if err != nil {
		log.Error("failed to query category summaries",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var summaries []store.CategorySummary
	for rows.Next() {
		var cs store.CategorySummary
		if err := rows.Scan(&cs.Category, &cs.Total, &cs.Count, &cs.Average); err != nil {
			return nil, MapError(err)
		}
		summaries = append(summaries, cs)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	if summaries == nil {
		summaries = []store.CategorySummary{}
	}

	return summaries, nil
}

// WithTx implements store.TransactionStore.WithTx.
func (s *TransactionStore) WithTx(tx *sql.Tx) store.TransactionStore {
	return &TransactionStore{
		db:     tx,
		logger: s.logger,
	}
}

// rowScanner abstracts *sql.Row and *sql.Rows for scanTransaction.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanTransaction reads one transaction row.
func scanTransaction(row rowScanner) (*domain.Transaction, error) {
	var txn domain.Transaction
	var description, category, referenceNumber sql.NullString
	var amount decimal.Decimal
	var txType string

	err := row.Scan(
		&txn.ID,
		&txn.UserID,
		&amount,
		&description,
		&txType,
		&category,
		&txn.TransactionDate,
		&referenceNumber,
		&txn.CreatedAt,
		&txn.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	txn.Amount = amount
	txn.Description = description.String
	txn.Type = domain.TransactionType(txType)
	txn.Category = category.String
	txn.ReferenceNumber = referenceNumber.String

	return &txn, nil
}
