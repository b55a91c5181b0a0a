package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetPeriod is the granularity a budget was set up for. It is
// informational only; the query window is always [StartDate, EndDate or
// asOf], regardless of period.
type BudgetPeriod string

const (
	Daily   BudgetPeriod = "daily"
	Weekly  BudgetPeriod = "weekly"
	Monthly BudgetPeriod = "monthly"
	Yearly  BudgetPeriod = "yearly"
)

// BudgetStatus bands a budget's health from its spent/amount ratio.
type BudgetStatus string

const (
	BudgetOK      BudgetStatus = "ok"
	BudgetWarning BudgetStatus = "warning"
	BudgetOver    BudgetStatus = "over"
)

// Budget is a spending target for a category over a window. Spent amounts
// are never persisted; they are recomputed from transactions on every read.
type Budget struct {
	BudgetID   string          `json:"budgetID"`   // Primary Key (UUID)
	UserID     string          `json:"userID"`     // Owning user
	CategoryID *string         `json:"categoryID"` // FK -> categories, nulled on category delete
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Period     BudgetPeriod    `json:"period"`
	StartDate  time.Time       `json:"startDate"`
	EndDate    *time.Time      `json:"endDate"` // Open-ended when nil
	IsActive   bool            `json:"isActive"`
	AuditFields

	CategoryName  string `json:"categoryName,omitempty"`
	CategoryColor string `json:"categoryColor,omitempty"`
}

var budgetWarningRatio = decimal.RequireFromString("0.9")

// BudgetStatusFor bands (spent, amount): over when spent exceeds amount,
// warning above 90% of amount, ok otherwise. Pure function of its inputs so
// any caller can re-derive the band from the returned spent/amount pair.
func BudgetStatusFor(spent, amount decimal.Decimal) BudgetStatus {
	switch {
	case spent.GreaterThan(amount):
		return BudgetOver
	case spent.GreaterThan(amount.Mul(budgetWarningRatio)):
		return BudgetWarning
	default:
		return BudgetOK
	}
}

// PercentageSpent returns spent/amount*100 rounded to 2 places. Defined as 0
// when amount is 0 so UI-facing values stay total-order comparable.
func PercentageSpent(spent, amount decimal.Decimal) decimal.Decimal {
	if amount.IsZero() {
		return decimal.Zero
	}
	return spent.Div(amount).Mul(decimal.NewFromInt(100)).Round(2)
}
