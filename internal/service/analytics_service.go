package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/trancendos/alervato/internal/platform/logger"
	"github.com/trancendos/alervato/internal/store"
)

// Analytics window defaults.
const (
	DefaultOverviewDays  = 30
	DefaultPatternDays   = 90
	DefaultCategoryDays  = 30
	topCategoriesLimit   = 5
	savingsRatePrecision = 2
)

// Overview summarizes a user's financial activity over a trailing window.
type Overview struct {
	PeriodDays       int                   `json:"period_days"`
	TotalIncome      decimal.Decimal       `json:"total_income"`
	TotalExpenses    decimal.Decimal       `json:"total_expenses"`
	NetSavings       decimal.Decimal       `json:"net_savings"`
	SavingsRate      decimal.Decimal       `json:"savings_rate"`
	TransactionCount int                   `json:"transaction_count"`
	TopCategories    []store.CategoryTotal `json:"top_categories"`
}

// SpendingPatterns describes the shape of a user's spending over a trailing
// window: per-day statistics plus month-by-month totals.
type SpendingPatterns struct {
	PeriodDays         int                  `json:"period_days"`
	AvgDailySpending   decimal.Decimal      `json:"avg_daily_spending"`
	MaxSpendingDay     decimal.Decimal      `json:"max_spending_day"`
	MinSpendingDay     decimal.Decimal      `json:"min_spending_day"`
	SpendingVolatility decimal.Decimal      `json:"spending_volatility"`
	MonthlyTrends      []store.MonthlyTotal `json:"monthly_trends"`
}

// CategoryInsight is one category's share of a user's spending.
type CategoryInsight struct {
	Category        string          `json:"category"`
	Total           decimal.Decimal `json:"total"`
	Count           int             `json:"transaction_count"`
	Average         decimal.Decimal `json:"avg_transaction"`
	ShareOfExpenses decimal.Decimal `json:"share_of_expenses"`
}

// CategoryAnalysis breaks a user's spending down by category.
type CategoryAnalysis struct {
	PeriodDays int               `json:"period_days"`
	Category   string            `json:"category,omitempty"`
	Categories []CategoryInsight `json:"categories"`
}

// AnalyticsService derives summary figures from a user's transactions.
type AnalyticsService interface {
	// Overview aggregates the user's transactions over the trailing window
	// of the given number of days. Non-positive days falls back to
	// DefaultOverviewDays. The savings rate is a percentage of income and
	// reported as zero when there is no income.
	Overview(ctx context.Context, userID uuid.UUID, days int) (*Overview, error)

	// SpendingPatterns computes daily spending statistics and monthly
	// trends over the trailing window. Non-positive days falls back to
	// DefaultPatternDays. Volatility is the standard deviation of daily
	// expense totals and zero when fewer than two days have expenses.
	SpendingPatterns(ctx context.Context, userID uuid.UUID, days int) (*SpendingPatterns, error)

	// CategoryAnalysis breaks spending down by category over the trailing
	// window. Non-positive days falls back to DefaultCategoryDays. A
	// non-empty category restricts the analysis to that category; its
	// share is still computed against all expenses in the window.
	CategoryAnalysis(ctx context.Context, userID uuid.UUID, category string, days int) (*CategoryAnalysis, error)
}

// analyticsServiceImpl implements the AnalyticsService interface.
type analyticsServiceImpl struct {
	transactionStore store.TransactionStore
	logger           *slog.Logger

	// timeFunc allows tests to control the window anchor.
	timeFunc func() time.Time
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(transactionStore store.TransactionStore, logger *slog.Logger) AnalyticsService {
	return &analyticsServiceImpl{
		transactionStore: transactionStore,
		logger:           logger.With(slog.String("component", "analytics_service")),
		timeFunc:         time.Now,
	}
}

// Overview implements AnalyticsService.Overview.
func (s *analyticsServiceImpl) Overview(ctx context.Context, userID uuid.UUID, days int) (*Overview, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if days <= 0 {
		days = DefaultOverviewDays
	}
	since := s.timeFunc().UTC().AddDate(0, 0, -days)

	summary, err := s.transactionStore.Summarize(ctx, userID, since)
	if err != nil {
		log.Error("failed to summarize transactions",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to summarize transactions: %w", err)
	}

	topCategories, err := s.transactionStore.TopExpenseCategories(ctx, userID, since, topCategoriesLimit)
	if err != nil {
		log.Error("failed to compute top expense categories",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to compute top expense categories: %w", err)
	}

	net := summary.TotalIncome.Sub(summary.TotalExpenses)

	savingsRate := decimal.Zero
	if summary.TotalIncome.IsPositive() {
		savingsRate = net.
			Div(summary.TotalIncome).
			Mul(decimal.NewFromInt(100)).
			Round(savingsRatePrecision)
	}

	log.Debug("computed analytics overview",
		slog.String("user_id", userID.String()),
		slog.Int("period_days", days),
		slog.Int("transaction_count", summary.Count))

	return &Overview{
		PeriodDays:       days,
		TotalIncome:      summary.TotalIncome,
		TotalExpenses:    summary.TotalExpenses,
		NetSavings:       net,
		SavingsRate:      savingsRate,
		TransactionCount: summary.Count,
		TopCategories:    topCategories,
	}, nil
}

// SpendingPatterns implements AnalyticsService.SpendingPatterns.
func (s *analyticsServiceImpl) SpendingPatterns(
	ctx context.Context,
	userID uuid.UUID,
	days int,
) (*SpendingPatterns, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if days <= 0 {
		days = DefaultPatternDays
	}
	since := s.timeFunc().UTC().AddDate(0, 0, -days)

	daily, err := s.transactionStore.DailyExpenseTotals(ctx, userID, since)
	if err != nil {
		log.Error("failed to compute daily expense totals",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to compute daily expense totals: %w", err)
	}

	trends, err := s.transactionStore.MonthlyTotals(ctx, userID, since)
	if err != nil {
		log.Error("failed to compute monthly totals",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to compute monthly totals: %w", err)
	}

	patterns := &SpendingPatterns{
		PeriodDays:    days,
		MonthlyTrends: trends,
	}

	if len(daily) > 0 {
		sum := decimal.Zero
		maxDay := daily[0].Total
		minDay := daily[0].Total
		for _, d := range daily {
			sum = sum.Add(d.Total)
			if d.Total.GreaterThan(maxDay) {
				maxDay = d.Total
			}
			if d.Total.LessThan(minDay) {
				minDay = d.Total
			}
		}
		patterns.AvgDailySpending = sum.
			Div(decimal.NewFromInt(int64(len(daily)))).
			Round(savingsRatePrecision)
		patterns.MaxSpendingDay = maxDay
		patterns.MinSpendingDay = minDay
		if len(daily) > 1 {
			patterns.SpendingVolatility = dailyVolatility(daily).Round(savingsRatePrecision)
		}
	}

	log.Debug("computed spending patterns",
		slog.String("user_id", userID.String()),
		slog.Int("period_days", days),
		slog.Int("spending_days", len(daily)))

	return patterns, nil
}

// dailyVolatility is the population standard deviation of the daily expense
// totals. Computed in float64: the result is a descriptive statistic, not a
// monetary amount.
func dailyVolatility(daily []store.DailyTotal) decimal.Decimal {
	n := float64(len(daily))

	values := make([]float64, len(daily))
	var sum float64
	for i, d := range daily {
		v, _ := d.Total.Float64()
		values[i] = v
		sum += v
	}
	mean := sum / n

	var variance float64
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}

	return decimal.NewFromFloat(math.Sqrt(variance / n))
}

// CategoryAnalysis implements AnalyticsService.CategoryAnalysis.
func (s *analyticsServiceImpl) CategoryAnalysis(
	ctx context.Context,
	userID uuid.UUID,
	category string,
	days int,
) (*CategoryAnalysis, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if days <= 0 {
		days = DefaultCategoryDays
	}
	since := s.timeFunc().UTC().AddDate(0, 0, -days)

	summaries, err := s.transactionStore.CategorySummaries(ctx, userID, since)
	if err != nil {
		log.Error("failed to compute category summaries",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to compute category summaries: %w", err)
	}

	overall := decimal.Zero
	for _, cs := range summaries {
		overall = overall.Add(cs.Total)
	}

	analysis := &CategoryAnalysis{
		PeriodDays: days,
		Category:   category,
		Categories: []CategoryInsight{},
	}
	for _, cs := range summaries {
		if category != "" && cs.Category != category {
			continue
		}
		share := decimal.Zero
		if overall.IsPositive() {
			share = cs.Total.
				Div(overall).
				Mul(decimal.NewFromInt(100)).
				Round(savingsRatePrecision)
		}
		analysis.Categories = append(analysis.Categories, CategoryInsight{
			Category:        cs.Category,
			Total:           cs.Total,
			Count:           cs.Count,
			Average:         cs.Average.Round(savingsRatePrecision),
			ShareOfExpenses: share,
		})
	}

	log.Debug("computed category analysis",
		slog.String("user_id", userID.String()),
		slog.Int("period_days", days),
		slog.Int("categories", len(analysis.Categories)))

	return analysis, nil
}
