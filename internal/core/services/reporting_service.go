package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kash-money/kash_backend/internal/apperrors"
	"github.com/kash-money/kash_backend/internal/core/domain"
	portsrepo "github.com/kash-money/kash_backend/internal/core/ports/repositories"
	portssvc "github.com/kash-money/kash_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

var hundred = decimal.NewFromInt(100)

// ReportingService serves the derived read models. Every figure is computed
// from ledger rows at request time; reports never write.
type ReportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	budgetRepo    portsrepo.BudgetRepository
}

func NewReportingService(reportingRepo portsrepo.ReportingRepository, budgetRepo portsrepo.BudgetRepository) *ReportingService {
	return &ReportingService{
		reportingRepo: reportingRepo,
		budgetRepo:    budgetRepo,
	}
}

// Ensure ReportingService implements portssvc.ReportingSvcFacade
var _ portssvc.ReportingSvcFacade = (*ReportingService)(nil)

// GetSummary assembles the headline overview. The balance total and the
// income/expense sums are independent queries, so they run concurrently.
// Savings rate is net/income*100, defined as 0 when there is no income.
func (s *ReportingService) GetSummary(ctx context.Context, userID string, rng portsrepo.DateRange) (*domain.Summary, error) {
	var (
		totalBalance    decimal.Decimal
		income, expense decimal.Decimal
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		totalBalance, err = s.reportingRepo.GetActiveBalanceTotal(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		income, expense, err = s.reportingRepo.GetIncomeExpenseTotals(gctx, userID, rng)
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to compute summary")
		return nil, fmt.Errorf("failed to compute summary: %w", err)
	}

	net := income.Sub(expense)
	savingsRate := decimal.Zero
	if !income.IsZero() {
		savingsRate = net.Div(income).Mul(hundred).Round(2)
	}

	return &domain.Summary{
		TotalBalance: totalBalance,
		TotalIncome:  income,
		TotalExpense: expense,
		NetIncome:    net,
		SavingsRate:  savingsRate,
	}, nil
}

// GetSpendingByCategory breaks a range down per category. Each percentage is
// the category's share of the grand total across the returned rows; when the
// grand total is zero every share is zero.
func (s *ReportingService) GetSpendingByCategory(ctx context.Context, userID string, kind domain.CategoryKind, rng portsrepo.DateRange) ([]domain.CategoryTotal, error) {
	switch kind {
	case domain.CategoryIncome, domain.CategoryExpense:
	default:
		return nil, fmt.Errorf("%w: invalid category kind %q", apperrors.ErrValidation, kind)
	}

	totals, err := s.reportingRepo.GetCategoryTotals(ctx, userID, kind, rng)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute category totals", slog.String("kind", string(kind)))
		return nil, fmt.Errorf("failed to compute category totals: %w", err)
	}

	grandTotal := decimal.Zero
	for _, t := range totals {
		grandTotal = grandTotal.Add(t.Total)
	}
	for i := range totals {
		if grandTotal.IsZero() {
			totals[i].Percentage = decimal.Zero
		} else {
			totals[i].Percentage = totals[i].Total.Div(grandTotal).Mul(hundred).Round(2)
		}
	}

	return totals, nil
}

// GetIncomeExpenseTrend returns income and expense sums per calendar bucket.
func (s *ReportingService) GetIncomeExpenseTrend(ctx context.Context, userID string, bucket domain.TrendBucket, rng portsrepo.DateRange) ([]domain.TrendPoint, error) {
	if !bucket.IsValid() {
		return nil, fmt.Errorf("%w: invalid trend bucket %q", apperrors.ErrValidation, bucket)
	}

	points, err := s.reportingRepo.GetTrend(ctx, userID, bucket, rng)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute trend", slog.String("bucket", string(bucket)))
		return nil, fmt.Errorf("failed to compute trend: %w", err)
	}
	return points, nil
}

// GetBudgetProgress reports live spend status for every active budget.
func (s *ReportingService) GetBudgetProgress(ctx context.Context, userID string) ([]domain.BudgetProgress, error) {
	active := true
	budgets, err := s.budgetRepo.ListBudgets(ctx, userID, &active)
	if err != nil {
		s.LogError(ctx, err, "Failed to list budgets for progress report")
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	result := make([]domain.BudgetProgress, len(budgets))
	g, gctx := errgroup.WithContext(ctx)
	for i, b := range budgets {
		g.Go(func() error {
			from, to := spentWindow(b, time.Now())
			spent, err := s.reportingRepo.GetBudgetSpent(gctx, userID, b.CategoryID, from, to)
			if err != nil {
				return fmt.Errorf("failed to compute spend for budget %s: %w", b.BudgetID, err)
			}
			result[i] = domain.BudgetProgress{
				BudgetID:   b.BudgetID,
				Name:       b.Name,
				Category:   b.CategoryName,
				Color:      b.CategoryColor,
				Amount:     b.Amount,
				Spent:      spent,
				Remaining:  b.Amount.Sub(spent),
				Percentage: domain.PercentageSpent(spent, b.Amount),
				Status:     domain.BudgetStatusFor(spent, b.Amount),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to compute budget progress")
		return nil, err
	}

	return result, nil
}
