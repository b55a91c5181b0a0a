package services

import (
	"context"

	"github.com/kash-money/kash_backend/internal/core/domain"
	"github.com/kash-money/kash_backend/internal/core/ports/repositories"
)

// ReportingSvcFacade defines the derived report reads exposed to handlers.
// Reports never mutate ledger state.
type ReportingSvcFacade interface {
	// GetSummary returns the headline totals for the range: total balance
	// across active accounts, income, expense, net income and savings rate.
	GetSummary(ctx context.Context, userID string, rng repositories.DateRange) (*domain.Summary, error)

	// GetSpendingByCategory breaks the range's totals down per category for
	// the given kind, with each category's percentage of the grand total.
	GetSpendingByCategory(ctx context.Context, userID string, kind domain.CategoryKind, rng repositories.DateRange) ([]domain.CategoryTotal, error)

	// GetIncomeExpenseTrend returns income and expense sums per calendar
	// bucket over the range.
	GetIncomeExpenseTrend(ctx context.Context, userID string, bucket domain.TrendBucket, rng repositories.DateRange) ([]domain.TrendPoint, error)

	// GetBudgetProgress returns spend progress for every active budget.
	GetBudgetProgress(ctx context.Context, userID string) ([]domain.BudgetProgress, error)
}
