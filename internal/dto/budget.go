package dto

import (
	"time"

	"github.com/kash-money/kash_backend/internal/core/domain"
	portssvc "github.com/kash-money/kash_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// CreateBudgetRequest defines the data needed to create a spending target.
type CreateBudgetRequest struct {
	Name       string              `json:"name" binding:"required"`
	CategoryID *string             `json:"categoryID"`
	Amount     decimal.Decimal     `json:"amount" binding:"required"`
	Period     domain.BudgetPeriod `json:"period" binding:"required,oneof=daily weekly monthly yearly"`
	StartDate  string              `json:"startDate" binding:"required"` // YYYY-MM-DD
	EndDate    *string             `json:"endDate"`                      // YYYY-MM-DD, open-ended when absent
}

// ToParams converts the request to service-layer parameters, parsing dates.
func (r CreateBudgetRequest) ToParams() (portssvc.CreateBudgetParams, error) {
	start, err := parseDate(r.StartDate, "startDate")
	if err != nil {
		return portssvc.CreateBudgetParams{}, err
	}
	params := portssvc.CreateBudgetParams{
		Name:       r.Name,
		CategoryID: r.CategoryID,
		Amount:     r.Amount,
		Period:     r.Period,
		StartDate:  start,
	}
	if r.EndDate != nil {
		end, err := parseDate(*r.EndDate, "endDate")
		if err != nil {
			return portssvc.CreateBudgetParams{}, err
		}
		params.EndDate = &end
	}
	return params, nil
}

// UpdateBudgetRequest defines the data allowed for updating a budget.
// ClearEndDate makes the budget open-ended; it wins over EndDate when both
// are sent. ClearCategory detaches the tracked category.
type UpdateBudgetRequest struct {
	Name          *string              `json:"name"`
	CategoryID    *string              `json:"categoryID"`
	ClearCategory bool                 `json:"clearCategory"`
	Amount        *decimal.Decimal     `json:"amount"`
	Period        *domain.BudgetPeriod `json:"period" binding:"omitempty,oneof=daily weekly monthly yearly"`
	StartDate     *string              `json:"startDate"` // YYYY-MM-DD
	EndDate       *string              `json:"endDate"`   // YYYY-MM-DD
	ClearEndDate  bool                 `json:"clearEndDate"`
	IsActive      *bool                `json:"isActive"`
}

// ToParams converts the request to service-layer parameters, parsing dates.
func (r UpdateBudgetRequest) ToParams() (portssvc.UpdateBudgetParams, error) {
	params := portssvc.UpdateBudgetParams{
		Name:        r.Name,
		CategoryID:  r.CategoryID,
		CategorySet: r.CategoryID != nil,
		Amount:      r.Amount,
		Period:      r.Period,
		IsActive:    r.IsActive,
	}
	if r.ClearCategory {
		params.CategoryID = nil
		params.CategorySet = true
	}
	if r.StartDate != nil {
		start, err := parseDate(*r.StartDate, "startDate")
		if err != nil {
			return portssvc.UpdateBudgetParams{}, err
		}
		params.StartDate = &start
	}
	if r.EndDate != nil {
		end, err := parseDate(*r.EndDate, "endDate")
		if err != nil {
			return portssvc.UpdateBudgetParams{}, err
		}
		params.EndDate = &end
		params.EndDateSet = true
	}
	if r.ClearEndDate {
		params.EndDate = nil
		params.EndDateSet = true
	}
	return params, nil
}

// ListBudgetsParams defines query parameters for listing budgets.
type ListBudgetsParams struct {
	Active *bool `form:"active"`
}

// BudgetResponse defines the data returned for a budget, including the
// spend progress recomputed from the ledger at read time.
type BudgetResponse struct {
	BudgetID      string              `json:"budgetID"`
	Name          string              `json:"name"`
	CategoryID    *string             `json:"categoryID"`
	CategoryName  string              `json:"categoryName,omitempty"`
	CategoryColor string              `json:"categoryColor,omitempty"`
	Amount        decimal.Decimal     `json:"amount"`
	Period        domain.BudgetPeriod `json:"period"`
	StartDate     string              `json:"startDate"`
	EndDate       *string             `json:"endDate"`
	IsActive      bool                `json:"isActive"`
	Spent         decimal.Decimal     `json:"spent"`
	Remaining     decimal.Decimal     `json:"remaining"`
	Percentage    decimal.Decimal     `json:"percentage"`
	Status        domain.BudgetStatus `json:"status"`
	CreatedAt     time.Time           `json:"createdAt"`
	LastUpdatedAt time.Time           `json:"lastUpdatedAt"`
}

// ToBudgetResponse converts a budget with progress to its response DTO.
func ToBudgetResponse(bp *portssvc.BudgetWithProgress) BudgetResponse {
	b := bp.Budget
	res := BudgetResponse{
		BudgetID:      b.BudgetID,
		Name:          b.Name,
		CategoryID:    b.CategoryID,
		CategoryName:  b.CategoryName,
		CategoryColor: b.CategoryColor,
		Amount:        b.Amount,
		Period:        b.Period,
		StartDate:     b.StartDate.Format(domain.DateFormat),
		IsActive:      b.IsActive,
		Spent:         bp.Spent,
		Remaining:     bp.Remaining,
		Percentage:    bp.Percentage,
		Status:        bp.Status,
		CreatedAt:     b.CreatedAt,
		LastUpdatedAt: b.LastUpdatedAt,
	}
	if b.EndDate != nil {
		end := b.EndDate.Format(domain.DateFormat)
		res.EndDate = &end
	}
	return res
}

// ToListBudgetResponse converts budgets with progress to response DTOs.
func ToListBudgetResponse(bps []portssvc.BudgetWithProgress) []BudgetResponse {
	res := make([]BudgetResponse, len(bps))
	for i := range bps {
		res[i] = ToBudgetResponse(&bps[i])
	}
	return res
}
