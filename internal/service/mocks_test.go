package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/trancendos/alervato/internal/domain"
	"github.com/trancendos/alervato/internal/service/auth"
	"github.com/trancendos/alervato/internal/store"
)

// MockUserStore mocks the store.UserStore interface
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserStore) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserStore) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	args := m.Called(tx)
	return args.Get(0).(store.UserStore)
}

// MockRoleStore mocks the store.RoleStore interface
type MockRoleStore struct {
	mock.Mock
}

func (m *MockRoleStore) GetByName(ctx context.Context, name string) (*domain.Role, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Role), args.Error(1)
}

func (m *MockRoleStore) WithTx(tx *sql.Tx) store.RoleStore {
	args := m.Called(tx)
	return args.Get(0).(store.RoleStore)
}

// MockTransactionStore mocks the store.TransactionStore interface
type MockTransactionStore struct {
	mock.Mock
}

func (m *MockTransactionStore) Create(ctx context.Context, txn *domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionStore) GetByIDForUser(
	ctx context.Context,
	id, userID uuid.UUID,
) (*domain.Transaction, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
	limit, offset int,
) ([]*domain.Transaction, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Transaction), args.Error(1)
}

func (m *MockTransactionStore) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockTransactionStore) Update(ctx context.Context, txn *domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionStore) Delete(ctx context.Context, id, userID uuid.UUID) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *MockTransactionStore) Summarize(
	ctx context.Context,
	userID uuid.UUID,
	since time.Time,
) (*store.TransactionSummary, error) {
	args := m.Called(ctx, userID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.TransactionSummary), args.Error(1)
}

func (m *MockTransactionStore) TopExpenseCategories(
	ctx context.Context,
	userID uuid.UUID,
	since time.Time,
	limit int,
) ([]store.CategoryTotal, error) {
	args := m.Called(ctx, userID, since, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.CategoryTotal), args.Error(1)
}

func (m *MockTransactionStore) DailyExpenseTotals(
	ctx context.Context,
	userID uuid.UUID,
	since time.Time,
) ([]store.DailyTotal, error) {
	args := m.Called(ctx, userID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.DailyTotal), args.Error(1)
}

func (m *MockTransactionStore) MonthlyTotals(
	ctx context.Context,
	userID uuid.UUID,
	since time.Time,
) ([]store.MonthlyTotal, error) {
	args := m.Called(ctx, userID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.MonthlyTotal), args.Error(1)
}

func (m *MockTransactionStore) CategorySummaries(
	ctx context.Context,
	userID uuid.UUID,
	since time.Time,
) ([]store.CategorySummary, error) {
	args := m.Called(ctx, userID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.CategorySummary), args.Error(1)
}

func (m *MockTransactionStore) WithTx(tx *sql.Tx) store.TransactionStore {
	args := m.Called(tx)
	return args.Get(0).(store.TransactionStore)
}

// MockCostStore mocks the store.CostStore interface
type MockCostStore struct {
	mock.Mock
}

func (m *MockCostStore) Create(ctx context.Context, cost *domain.Cost) error {
	args := m.Called(ctx, cost)
	return args.Error(0)
}

func (m *MockCostStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Cost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cost), args.Error(1)
}

func (m *MockCostStore) List(ctx context.Context) ([]*domain.Cost, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Cost), args.Error(1)
}

func (m *MockCostStore) Update(ctx context.Context, cost *domain.Cost) error {
	args := m.Called(ctx, cost)
	return args.Error(0)
}

func (m *MockCostStore) WithTx(tx *sql.Tx) store.CostStore {
	args := m.Called(tx)
	return args.Get(0).(store.CostStore)
}

// MockOfferingStore mocks the store.OfferingStore interface
type MockOfferingStore struct {
	mock.Mock
}

func (m *MockOfferingStore) Create(ctx context.Context, offering *domain.ServiceOffering) error {
	args := m.Called(ctx, offering)
	return args.Error(0)
}

func (m *MockOfferingStore) List(ctx context.Context) ([]*domain.ServiceOffering, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ServiceOffering), args.Error(1)
}

func (m *MockOfferingStore) WithTx(tx *sql.Tx) store.OfferingStore {
	args := m.Called(tx)
	return args.Get(0).(store.OfferingStore)
}

// MockJWTService mocks the auth.JWTService interface
type MockJWTService struct {
	mock.Mock
}

func (m *MockJWTService) GenerateToken(ctx context.Context, userID uuid.UUID) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *MockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Claims), args.Error(1)
}

// MockPasswordVerifier mocks the auth.PasswordVerifier interface
type MockPasswordVerifier struct {
	mock.Mock
}

func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	args := m.Called(hashedPassword, password)
	return args.Error(0)
}
