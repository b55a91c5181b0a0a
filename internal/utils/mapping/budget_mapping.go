package mapping

import (
	"github.com/kash-money/kash_backend/internal/core/domain"
	"github.com/kash-money/kash_backend/internal/models"
)

// ToModelBudget converts a domain budget to its DB representation.
func ToModelBudget(d domain.Budget) models.Budget {
	return models.Budget{
		BudgetID:   d.BudgetID,
		UserID:     d.UserID,
		CategoryID: d.CategoryID,
		Name:       d.Name,
		Amount:     d.Amount,
		Period:     string(d.Period),
		StartDate:  d.StartDate,
		EndDate:    d.EndDate,
		IsActive:   d.IsActive,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainBudget converts a DB budget row to the domain representation.
func ToDomainBudget(m models.Budget) domain.Budget {
	d := domain.Budget{
		BudgetID:   m.BudgetID,
		UserID:     m.UserID,
		CategoryID: m.CategoryID,
		Name:       m.Name,
		Amount:     m.Amount,
		Period:     domain.BudgetPeriod(m.Period),
		StartDate:  m.StartDate,
		EndDate:    m.EndDate,
		IsActive:   m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
	if m.CategoryName != nil {
		d.CategoryName = *m.CategoryName
	}
	if m.CategoryColor != nil {
		d.CategoryColor = *m.CategoryColor
	}
	return d
}

// ToDomainBudgetSlice converts a slice of budget rows.
func ToDomainBudgetSlice(ms []models.Budget) []domain.Budget {
	ds := make([]domain.Budget, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBudget(m)
	}
	return ds
}
