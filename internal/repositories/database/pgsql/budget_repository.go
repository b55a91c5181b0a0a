package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kash-money/kash_backend/internal/apperrors"
	"github.com/kash-money/kash_backend/internal/core/domain"
	portsrepo "github.com/kash-money/kash_backend/internal/core/ports/repositories"
	"github.com/kash-money/kash_backend/internal/models"
	"github.com/kash-money/kash_backend/internal/utils/mapping"
)

type PgxBudgetRepository struct {
	pool *pgxpool.Pool
}

// newPgxBudgetRepository creates a new repository for budget data.
func newPgxBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepository {
	return &PgxBudgetRepository{pool: pool}
}

// Ensure PgxBudgetRepository implements portsrepo.BudgetRepository
var _ portsrepo.BudgetRepository = (*PgxBudgetRepository)(nil)

const budgetColumns = `b.budget_id, b.user_id, b.category_id, b.name, b.amount, b.period, b.start_date, b.end_date, b.is_active, b.created_at, b.last_updated_at, c.name AS category_name, c.color AS category_color`

const budgetJoins = `
	FROM budgets b
	LEFT JOIN categories c ON c.category_id = b.category_id`

func scanBudget(row pgx.Row) (models.Budget, error) {
	var m models.Budget
	err := row.Scan(
		&m.BudgetID,
		&m.UserID,
		&m.CategoryID,
		&m.Name,
		&m.Amount,
		&m.Period,
		&m.StartDate,
		&m.EndDate,
		&m.IsActive,
		&m.CreatedAt,
		&m.LastUpdatedAt,
		&m.CategoryName,
		&m.CategoryColor,
	)
	return m, err
}

// SaveBudget inserts a new budget. Spent amounts are never written; they are
// recomputed from transactions on every read.
func (r *PgxBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	m := mapping.ToModelBudget(budget)

	query := `
		INSERT INTO budgets (budget_id, user_id, category_id, name, amount, period, start_date, end_date, is_active, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.pool.Exec(ctx, query,
		m.BudgetID,
		m.UserID,
		m.CategoryID,
		m.Name,
		m.Amount,
		m.Period,
		m.StartDate,
		m.EndDate,
		m.IsActive,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return translatePgError(err, fmt.Sprintf("failed to save budget %s", m.BudgetID))
	}
	return nil
}

// FindBudgetByID retrieves one of the user's budgets with its joined
// category name and color.
func (r *PgxBudgetRepository) FindBudgetByID(ctx context.Context, userID, budgetID string) (*domain.Budget, error) {
	query := `
		SELECT ` + budgetColumns + budgetJoins + `
		WHERE b.budget_id = $1 AND b.user_id = $2;
	`
	m, err := scanBudget(r.pool.QueryRow(ctx, query, budgetID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find budget by ID %s: %w", budgetID, err)
	}

	b := mapping.ToDomainBudget(m)
	return &b, nil
}

// ListBudgets retrieves the user's budgets newest first, optionally filtered
// to active ones.
func (r *PgxBudgetRepository) ListBudgets(ctx context.Context, userID string, activeOnly *bool) ([]domain.Budget, error) {
	query := `
		SELECT ` + budgetColumns + budgetJoins + `
		WHERE b.user_id = $1
	`
	args := []any{userID}
	if activeOnly != nil {
		query += ` AND b.is_active = $2`
		args = append(args, *activeOnly)
	}
	query += ` ORDER BY b.created_at DESC;`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets for user %s: %w", userID, err)
	}
	defer rows.Close()

	ms := []models.Budget{}
	for rows.Next() {
		m, err := scanBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan budget row for user %s: %w", userID, err)
		}
		ms = append(ms, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating budget rows for user %s: %w", userID, rows.Err())
	}

	return mapping.ToDomainBudgetSlice(ms), nil
}

// UpdateBudget rewrites a budget's mutable fields.
func (r *PgxBudgetRepository) UpdateBudget(ctx context.Context, budget domain.Budget) error {
	m := mapping.ToModelBudget(budget)

	query := `
		UPDATE budgets
		SET category_id = $3, name = $4, amount = $5, period = $6, start_date = $7, end_date = $8, is_active = $9, last_updated_at = $10
		WHERE budget_id = $1 AND user_id = $2;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		m.BudgetID,
		m.UserID,
		m.CategoryID,
		m.Name,
		m.Amount,
		m.Period,
		m.StartDate,
		m.EndDate,
		m.IsActive,
		m.LastUpdatedAt,
	)
	if err != nil {
		return translatePgError(err, fmt.Sprintf("failed to update budget %s", m.BudgetID))
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteBudget removes a budget. Transactions are untouched.
func (r *PgxBudgetRepository) DeleteBudget(ctx context.Context, userID, budgetID string) error {
	query := `
		DELETE FROM budgets
		WHERE budget_id = $1 AND user_id = $2;
	`
	cmdTag, err := r.pool.Exec(ctx, query, budgetID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete budget %s: %w", budgetID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
