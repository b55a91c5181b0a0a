package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/kash-money/kash_backend/internal/apperrors"
	"github.com/kash-money/kash_backend/internal/core/domain"
	portsrepo "github.com/kash-money/kash_backend/internal/core/ports/repositories"
	portssvc "github.com/kash-money/kash_backend/internal/core/ports/services"
)

// BudgetService manages spending targets. Spent amounts are never stored:
// every read recomputes them from the transaction rows, so a budget can
// never drift out of sync with the ledger.
type BudgetService struct {
	BaseService
	budgetRepo    portsrepo.BudgetRepository
	categoryRepo  portsrepo.CategoryRepository
	reportingRepo portsrepo.ReportingRepository
}

func NewBudgetService(budgetRepo portsrepo.BudgetRepository, categoryRepo portsrepo.CategoryRepository, reportingRepo portsrepo.ReportingRepository) *BudgetService {
	return &BudgetService{
		budgetRepo:    budgetRepo,
		categoryRepo:  categoryRepo,
		reportingRepo: reportingRepo,
	}
}

// Ensure BudgetService implements portssvc.BudgetSvcFacade
var _ portssvc.BudgetSvcFacade = (*BudgetService)(nil)

func validateBudgetPeriod(p domain.BudgetPeriod) error {
	switch p {
	case domain.Daily, domain.Weekly, domain.Monthly, domain.Yearly:
		return nil
	default:
		return fmt.Errorf("%w: invalid budget period %q", apperrors.ErrValidation, p)
	}
}

func (s *BudgetService) validateCategoryRef(ctx context.Context, userID string, categoryID *string) error {
	if categoryID == nil {
		return nil
	}
	_, err := s.categoryRepo.FindCategoryByID(ctx, userID, *categoryID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("%w: category %s does not exist", apperrors.ErrValidation, *categoryID)
	}
	return err
}

// spentWindow is the query window a budget tracks: start date through end
// date, or through today while the budget is open-ended.
func spentWindow(b domain.Budget, asOf time.Time) (time.Time, time.Time) {
	end := asOf
	if b.EndDate != nil {
		end = *b.EndDate
	}
	return b.StartDate, end
}

// progressFor derives the live spend figures for one budget.
func (s *BudgetService) progressFor(ctx context.Context, b domain.Budget) (*portssvc.BudgetWithProgress, error) {
	from, to := spentWindow(b, time.Now())
	spent, err := s.reportingRepo.GetBudgetSpent(ctx, b.UserID, b.CategoryID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to compute spend for budget %s: %w", b.BudgetID, err)
	}

	return &portssvc.BudgetWithProgress{
		Budget:     b,
		Spent:      spent,
		Remaining:  b.Amount.Sub(spent),
		Percentage: domain.PercentageSpent(spent, b.Amount),
		Status:     domain.BudgetStatusFor(spent, b.Amount),
	}, nil
}

// CreateBudget sets up a spending target. A budget without a category tracks
// nothing until one is assigned; its spent amount reads as zero.
func (s *BudgetService) CreateBudget(ctx context.Context, userID string, params portssvc.CreateBudgetParams) (*domain.Budget, error) {
	if err := validateNonNegativeMoney(params.Amount, "amount"); err != nil {
		return nil, err
	}
	if err := validateBudgetPeriod(params.Period); err != nil {
		return nil, err
	}
	if params.EndDate != nil && params.EndDate.Before(params.StartDate) {
		return nil, fmt.Errorf("%w: end date must not precede start date", apperrors.ErrValidation)
	}
	if err := s.validateCategoryRef(ctx, userID, params.CategoryID); err != nil {
		return nil, err
	}

	now := time.Now()
	budget := domain.Budget{
		BudgetID:   uuid.NewString(),
		UserID:     userID,
		CategoryID: params.CategoryID,
		Name:       params.Name,
		Amount:     params.Amount,
		Period:     params.Period,
		StartDate:  params.StartDate,
		EndDate:    params.EndDate,
		IsActive:   true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.budgetRepo.SaveBudget(ctx, budget); err != nil {
		s.LogError(ctx, err, "Failed to save budget in repository", slog.String("budget_id", budget.BudgetID))
		return nil, err
	}

	s.LogInfo(ctx, "Budget created", slog.String("budget_id", budget.BudgetID))
	return &budget, nil
}

// GetBudgetByID retrieves a budget with its spend progress recomputed from
// the ledger.
func (s *BudgetService) GetBudgetByID(ctx context.Context, userID, budgetID string) (*portssvc.BudgetWithProgress, error) {
	budget, err := s.budgetRepo.FindBudgetByID(ctx, userID, budgetID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find budget by ID in repository", slog.String("budget_id", budgetID))
		}
		return nil, err
	}

	progress, err := s.progressFor(ctx, *budget)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute budget progress", slog.String("budget_id", budgetID))
		return nil, err
	}
	return progress, nil
}

// ListBudgets retrieves budgets with live spend progress for each.
func (s *BudgetService) ListBudgets(ctx context.Context, userID string, activeOnly *bool) ([]portssvc.BudgetWithProgress, error) {
	budgets, err := s.budgetRepo.ListBudgets(ctx, userID, activeOnly)
	if err != nil {
		s.LogError(ctx, err, "Failed to list budgets from repository")
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	result := make([]portssvc.BudgetWithProgress, 0, len(budgets))
	for _, b := range budgets {
		progress, err := s.progressFor(ctx, b)
		if err != nil {
			s.LogError(ctx, err, "Failed to compute budget progress", slog.String("budget_id", b.BudgetID))
			return nil, err
		}
		result = append(result, *progress)
	}
	return result, nil
}

// UpdateBudget applies the provided fields to an existing budget.
func (s *BudgetService) UpdateBudget(ctx context.Context, userID, budgetID string, params portssvc.UpdateBudgetParams) (*domain.Budget, error) {
	budget, err := s.budgetRepo.FindBudgetByID(ctx, userID, budgetID)
	if err != nil {
		return nil, err
	}

	if params.CategorySet {
		if err := s.validateCategoryRef(ctx, userID, params.CategoryID); err != nil {
			return nil, err
		}
		budget.CategoryID = params.CategoryID
	}
	if params.Name != nil {
		budget.Name = *params.Name
	}
	if params.Amount != nil {
		if err := validateNonNegativeMoney(*params.Amount, "amount"); err != nil {
			return nil, err
		}
		budget.Amount = *params.Amount
	}
	if params.Period != nil {
		if err := validateBudgetPeriod(*params.Period); err != nil {
			return nil, err
		}
		budget.Period = *params.Period
	}
	if params.StartDate != nil {
		budget.StartDate = *params.StartDate
	}
	if params.EndDateSet {
		budget.EndDate = params.EndDate
	}
	if budget.EndDate != nil && budget.EndDate.Before(budget.StartDate) {
		return nil, fmt.Errorf("%w: end date must not precede start date", apperrors.ErrValidation)
	}
	if params.IsActive != nil {
		budget.IsActive = *params.IsActive
	}
	budget.LastUpdatedAt = time.Now()

	if err := s.budgetRepo.UpdateBudget(ctx, *budget); err != nil {
		s.LogError(ctx, err, "Failed to update budget in repository", slog.String("budget_id", budgetID))
		return nil, err
	}

	s.LogInfo(ctx, "Budget updated", slog.String("budget_id", budgetID))
	return budget, nil
}

// DeleteBudget removes a spending target. Transactions are never affected.
func (s *BudgetService) DeleteBudget(ctx context.Context, userID, budgetID string) error {
	if err := s.budgetRepo.DeleteBudget(ctx, userID, budgetID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete budget in repository", slog.String("budget_id", budgetID))
		}
		return err
	}

	s.LogInfo(ctx, "Budget deleted", slog.String("budget_id", budgetID))
	return nil
}
