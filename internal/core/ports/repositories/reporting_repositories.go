package repositories

import (
	"context"
	"time"

	"github.com/kash-money/kash_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateRange is an optional inclusive calendar window. A nil bound leaves
// that side open.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// ReportingRepository defines the read-only aggregate queries. All results
// are recomputed from source rows on every call; nothing is cached.
type ReportingRepository interface {
	// GetActiveBalanceTotal sums the cached balances of the user's active
	// accounts. Point-in-time: no date range applies.
	GetActiveBalanceTotal(ctx context.Context, userID string) (decimal.Decimal, error)

	// GetIncomeExpenseTotals sums income and expense transaction amounts
	// over the range.
	GetIncomeExpenseTotals(ctx context.Context, userID string, rng DateRange) (income, expense decimal.Decimal, err error)

	// GetCategoryTotals returns per-category sums and counts for the given
	// kind over the range. Categories with no matching transactions appear
	// with a zero total.
	GetCategoryTotals(ctx context.Context, userID string, kind domain.CategoryKind, rng DateRange) ([]domain.CategoryTotal, error)

	// GetTrend returns income/expense sums grouped into calendar buckets,
	// ordered by bucket key.
	GetTrend(ctx context.Context, userID string, bucket domain.TrendBucket, rng DateRange) ([]domain.TrendPoint, error)

	// GetBudgetSpent sums expense amounts for a budget's category between
	// from and to inclusive. A nil categoryID matches no transactions.
	GetBudgetSpent(ctx context.Context, userID string, categoryID *string, from, to time.Time) (decimal.Decimal, error)
}
