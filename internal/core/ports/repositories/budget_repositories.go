package repositories

import (
	"context"

	"github.com/kash-money/kash_backend/internal/core/domain"
)

// BudgetRepository defines persistence operations for budgets. Spent amounts
// are never stored here; they are derived by the reporting queries.
type BudgetRepository interface {
	// SaveBudget persists a new budget.
	SaveBudget(ctx context.Context, budget domain.Budget) error

	// FindBudgetByID retrieves one of the user's budgets with its joined
	// category name.
	FindBudgetByID(ctx context.Context, userID, budgetID string) (*domain.Budget, error)

	// ListBudgets retrieves the user's budgets newest first, optionally
	// filtered to active ones.
	ListBudgets(ctx context.Context, userID string, activeOnly *bool) ([]domain.Budget, error)

	// UpdateBudget updates an existing budget.
	UpdateBudget(ctx context.Context, budget domain.Budget) error

	// DeleteBudget removes a budget. Transactions are untouched.
	DeleteBudget(ctx context.Context, userID, budgetID string) error
}
