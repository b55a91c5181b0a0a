package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kash-money/kash_backend/internal/apperrors"
	"github.com/kash-money/kash_backend/internal/core/domain"
	portsrepo "github.com/kash-money/kash_backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

type PgxReportingRepository struct {
	pool *pgxpool.Pool
}

// newPgxReportingRepository creates a new repository for aggregate reads.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{pool: pool}
}

// Ensure PgxReportingRepository implements portsrepo.ReportingRepository
var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// trendBucketFormats maps a bucket granularity to a to_char pattern whose
// output sorts lexicographically in chronological order. Weeks use ISO
// numbering so the key pairs with the ISO year.
var trendBucketFormats = map[domain.TrendBucket]string{
	domain.BucketDay:   `YYYY-MM-DD`,
	domain.BucketWeek:  `IYYY-"W"IW`,
	domain.BucketMonth: `YYYY-MM`,
	domain.BucketYear:  `YYYY`,
}

// appendRange adds inclusive date bounds for the given column to a growing
// condition list. Nil bounds are skipped, leaving that side open.
func appendRange(conditions []string, args []any, column string, rng portsrepo.DateRange) ([]string, []any) {
	if rng.Start != nil {
		args = append(args, *rng.Start)
		conditions = append(conditions, fmt.Sprintf("%s >= $%d", column, len(args)))
	}
	if rng.End != nil {
		args = append(args, *rng.End)
		conditions = append(conditions, fmt.Sprintf("%s <= $%d", column, len(args)))
	}
	return conditions, args
}

// GetActiveBalanceTotal sums the cached balances of the user's active
// accounts.
func (r *PgxReportingRepository) GetActiveBalanceTotal(ctx context.Context, userID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(balance), 0)
		FROM accounts
		WHERE user_id = $1 AND is_active = TRUE;
	`
	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, userID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum account balances for user %s: %w", userID, err)
	}
	return total, nil
}

// GetIncomeExpenseTotals sums income and expense amounts over the range in a
// single pass.
func (r *PgxReportingRepository) GetIncomeExpenseTotals(ctx context.Context, userID string, rng portsrepo.DateRange) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE kind = 'income'), 0),
			COALESCE(SUM(amount) FILTER (WHERE kind = 'expense'), 0)
		FROM transactions
		WHERE user_id = $1`
	args := []any{userID}

	conditions := []string{}
	conditions, args = appendRange(conditions, args, "date", rng)
	for _, c := range conditions {
		query += " AND " + c
	}
	query += ";"

	var income, expense decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&income, &expense); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to sum income/expense for user %s: %w", userID, err)
	}
	return income, expense, nil
}

// GetCategoryTotals returns per-category sums and counts for the given kind
// over the range. The join runs from categories so unused categories still
// appear with a zero total; uncategorized transactions are excluded.
func (r *PgxReportingRepository) GetCategoryTotals(ctx context.Context, userID string, kind domain.CategoryKind, rng portsrepo.DateRange) ([]domain.CategoryTotal, error) {
	args := []any{userID, string(kind)}

	joinConditions := []string{"t.category_id = c.category_id", "t.kind = $2"}
	joinConditions, args = appendRange(joinConditions, args, "t.date", rng)

	query := `
		SELECT c.category_id, c.name, c.color, c.icon,
			COALESCE(SUM(t.amount), 0) AS total,
			COUNT(t.transaction_id) AS txn_count
		FROM categories c
		LEFT JOIN transactions t ON `
	for i, c := range joinConditions {
		if i > 0 {
			query += " AND "
		}
		query += c
	}
	query += `
		WHERE c.user_id = $1 AND c.kind = $2
		GROUP BY c.category_id, c.name, c.color, c.icon
		ORDER BY total DESC, c.name;
	`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query category totals for user %s: %w", userID, err)
	}
	defer rows.Close()

	totals := []domain.CategoryTotal{}
	for rows.Next() {
		var ct domain.CategoryTotal
		if err := rows.Scan(&ct.CategoryID, &ct.Name, &ct.Color, &ct.Icon, &ct.Total, &ct.TransactionCount); err != nil {
			return nil, fmt.Errorf("failed to scan category total row for user %s: %w", userID, err)
		}
		totals = append(totals, ct)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating category total rows for user %s: %w", userID, rows.Err())
	}

	return totals, nil
}

// GetTrend returns income and expense sums grouped into calendar buckets.
// The bucket key is formatted in SQL so its lexicographic order is the
// chronological order.
func (r *PgxReportingRepository) GetTrend(ctx context.Context, userID string, bucket domain.TrendBucket, rng portsrepo.DateRange) ([]domain.TrendPoint, error) {
	format, ok := trendBucketFormats[bucket]
	if !ok {
		return nil, fmt.Errorf("%w: unknown trend bucket %q", apperrors.ErrValidation, bucket)
	}

	args := []any{userID, format}
	query := `
		SELECT to_char(date, $2) AS bucket,
			COALESCE(SUM(amount) FILTER (WHERE kind = 'income'), 0),
			COALESCE(SUM(amount) FILTER (WHERE kind = 'expense'), 0)
		FROM transactions
		WHERE user_id = $1`

	conditions := []string{}
	conditions, args = appendRange(conditions, args, "date", rng)
	for _, c := range conditions {
		query += " AND " + c
	}
	query += `
		GROUP BY bucket
		ORDER BY bucket;
	`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s trend for user %s: %w", bucket, userID, err)
	}
	defer rows.Close()

	points := []domain.TrendPoint{}
	for rows.Next() {
		var p domain.TrendPoint
		if err := rows.Scan(&p.Bucket, &p.Income, &p.Expense); err != nil {
			return nil, fmt.Errorf("failed to scan trend row for user %s: %w", userID, err)
		}
		p.Net = p.Income.Sub(p.Expense)
		points = append(points, p)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating trend rows for user %s: %w", userID, rows.Err())
	}

	return points, nil
}

// GetBudgetSpent sums expense amounts for a budget's category between from
// and to inclusive. A budget with no category tracks nothing, so a nil
// categoryID short-circuits to zero.
func (r *PgxReportingRepository) GetBudgetSpent(ctx context.Context, userID string, categoryID *string, from, to time.Time) (decimal.Decimal, error) {
	if categoryID == nil {
		return decimal.Zero, nil
	}

	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE user_id = $1 AND category_id = $2 AND kind = 'expense' AND date >= $3 AND date <= $4;
	`
	var spent decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, userID, *categoryID, from, to).Scan(&spent); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum budget spend for category %s: %w", *categoryID, err)
	}
	return spent, nil
}
