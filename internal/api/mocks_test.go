package api

import (
	"context"

	"github.com/google/uuid"

	"github.com/trancendos/alervato/internal/domain"
	"github.com/trancendos/alervato/internal/service"
)

// Stub services with overridable behavior per test. Unset functions fail
// loudly through nil dereference, which points straight at the missing stub.

type stubAuthService struct {
	registerFn func(ctx context.Context, input service.RegisterInput) (*domain.User, error)
	loginFn    func(ctx context.Context, username, password string) (*service.LoginResult, error)
	logoutFn   func(ctx context.Context, token string) error
}

func (s *stubAuthService) Register(ctx context.Context, input service.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (*service.LoginResult, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) Logout(ctx context.Context, token string) error {
	return s.logoutFn(ctx, token)
}

type stubTransactionService struct {
	listFn   func(ctx context.Context, userID uuid.UUID, page, size int) (*service.TransactionPage, error)
	createFn func(ctx context.Context, userID uuid.UUID, input service.TransactionInput) (*domain.Transaction, error)
	getFn    func(ctx context.Context, id, userID uuid.UUID) (*domain.Transaction, error)
	updateFn func(ctx context.Context, id, userID uuid.UUID, input service.TransactionInput) (*domain.Transaction, error)
	deleteFn func(ctx context.Context, id, userID uuid.UUID) error
}

func (s *stubTransactionService) List(
	ctx context.Context,
	userID uuid.UUID,
	page, size int,
) (*service.TransactionPage, error) {
	return s.listFn(ctx, userID, page, size)
}

func (s *stubTransactionService) Create(
	ctx context.Context,
	userID uuid.UUID,
	input service.TransactionInput,
) (*domain.Transaction, error) {
	return s.createFn(ctx, userID, input)
}

func (s *stubTransactionService) Get(ctx context.Context, id, userID uuid.UUID) (*domain.Transaction, error) {
	return s.getFn(ctx, id, userID)
}

func (s *stubTransactionService) Update(
	ctx context.Context,
	id, userID uuid.UUID,
	input service.TransactionInput,
) (*domain.Transaction, error) {
	return s.updateFn(ctx, id, userID, input)
}

func (s *stubTransactionService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return s.deleteFn(ctx, id, userID)
}

type stubCostService struct {
	listFn    func(ctx context.Context) ([]*domain.Cost, error)
	createFn  func(ctx context.Context, input service.CostInput) (*domain.Cost, error)
	approveFn func(ctx context.Context, id uuid.UUID) (*domain.Cost, error)
	rejectFn  func(ctx context.Context, id uuid.UUID) (*domain.Cost, error)
}

func (s *stubCostService) List(ctx context.Context) ([]*domain.Cost, error) {
	return s.listFn(ctx)
}

func (s *stubCostService) Create(ctx context.Context, input service.CostInput) (*domain.Cost, error) {
	return s.createFn(ctx, input)
}

func (s *stubCostService) Approve(ctx context.Context, id uuid.UUID) (*domain.Cost, error) {
	return s.approveFn(ctx, id)
}

func (s *stubCostService) Reject(ctx context.Context, id uuid.UUID) (*domain.Cost, error) {
	return s.rejectFn(ctx, id)
}

type stubOfferingService struct {
	listFn   func(ctx context.Context) ([]*domain.ServiceOffering, error)
	createFn func(ctx context.Context, input service.OfferingInput) (*domain.ServiceOffering, error)
}

func (s *stubOfferingService) List(ctx context.Context) ([]*domain.ServiceOffering, error) {
	return s.listFn(ctx)
}

func (s *stubOfferingService) Create(
	ctx context.Context,
	input service.OfferingInput,
) (*domain.ServiceOffering, error) {
	return s.createFn(ctx, input)
}

type stubAnalyticsService struct {
	overviewFn         func(ctx context.Context, userID uuid.UUID, days int) (*service.Overview, error)
	spendingPatternsFn func(ctx context.Context, userID uuid.UUID, days int) (*service.SpendingPatterns, error)
	categoryAnalysisFn func(ctx context.Context, userID uuid.UUID, category string, days int) (*service.CategoryAnalysis, error)
}

func (s *stubAnalyticsService) Overview(
	ctx context.Context,
	userID uuid.UUID,
	days int,
) (*service.Overview, error) {
	return s.overviewFn(ctx, userID, days)
}

func (s *stubAnalyticsService) SpendingPatterns(
	ctx context.Context,
	userID uuid.UUID,
	days int,
) (*service.SpendingPatterns, error) {
	return s.spendingPatternsFn(ctx, userID, days)
}

func (s *stubAnalyticsService) CategoryAnalysis(
	ctx context.Context,
	userID uuid.UUID,
	category string,
	days int,
) (*service.CategoryAnalysis, error) {
	return s.categoryAnalysisFn(ctx, userID, category, days)
}
