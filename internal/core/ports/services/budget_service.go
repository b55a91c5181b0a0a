package services

import (
	"context"
	"time"

	"github.com/kash-money/kash_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBudgetParams carries validated input for budget creation.
type CreateBudgetParams struct {
	Name       string
	CategoryID *string
	Amount     decimal.Decimal
	Period     domain.BudgetPeriod
	StartDate  time.Time
	EndDate    *time.Time
}

// UpdateBudgetParams carries partial updates for a budget.
type UpdateBudgetParams struct {
	Name        *string
	CategoryID  *string
	CategorySet bool
	Amount      *decimal.Decimal
	Period      *domain.BudgetPeriod
	StartDate   *time.Time
	EndDate     *time.Time
	EndDateSet  bool
	IsActive    *bool
}

// BudgetWithProgress pairs a budget with its derived spending figures,
// recomputed from transaction rows at read time.
type BudgetWithProgress struct {
	Budget     domain.Budget
	Spent      decimal.Decimal
	Remaining  decimal.Decimal
	Percentage decimal.Decimal
	Status     domain.BudgetStatus
}

// BudgetSvcFacade defines budget operations exposed to handlers.
type BudgetSvcFacade interface {
	CreateBudget(ctx context.Context, userID string, params CreateBudgetParams) (*domain.Budget, error)
	GetBudgetByID(ctx context.Context, userID, budgetID string) (*BudgetWithProgress, error)
	ListBudgets(ctx context.Context, userID string, activeOnly *bool) ([]BudgetWithProgress, error)
	UpdateBudget(ctx context.Context, userID, budgetID string, params UpdateBudgetParams) (*domain.Budget, error)
	DeleteBudget(ctx context.Context, userID, budgetID string) error
}
