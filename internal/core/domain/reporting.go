package domain

import (
	"github.com/shopspring/decimal"
)

// TrendBucket is a calendar-aligned grouping granularity for trend reports.
// Bucket keys are encoded so that lexicographic order is chronological order
// (e.g. "2024-01" < "2024-02"); re-encodings must preserve that property.
type TrendBucket string

const (
	BucketDay   TrendBucket = "day"
	BucketWeek  TrendBucket = "week"
	BucketMonth TrendBucket = "month"
	BucketYear  TrendBucket = "year"
)

// IsValid reports whether b is a known bucket granularity.
func (b TrendBucket) IsValid() bool {
	switch b {
	case BucketDay, BucketWeek, BucketMonth, BucketYear:
		return true
	}
	return false
}

// Summary is the point-in-time financial overview for one owner.
// TotalBalance snapshots active accounts and ignores any date range;
// income and expense totals honor the range when one is given.
type Summary struct {
	TotalBalance decimal.Decimal `json:"totalBalance"`
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	NetIncome    decimal.Decimal `json:"netIncome"`
	SavingsRate  decimal.Decimal `json:"savingsRate"` // net/income*100, 0 when income is 0
}

// CategoryTotal is one category's share of spending (or income) over a range.
// Categories with no matching transactions still appear with a zero total.
type CategoryTotal struct {
	CategoryID       string          `json:"categoryID"`
	Name             string          `json:"name"`
	Color            string          `json:"color"`
	Icon             string          `json:"icon"`
	Total            decimal.Decimal `json:"total"`
	TransactionCount int             `json:"transactionCount"`
	Percentage       decimal.Decimal `json:"percentage"` // of the grand total, 0 when it is 0
}

// TrendPoint is one calendar bucket of the income-vs-expense trend.
type TrendPoint struct {
	Bucket  string          `json:"bucket"` // e.g. "2024-01" for a month bucket
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

// BudgetProgress is the live status of one budget: spent recomputed from
// transactions at read time, never cached.
type BudgetProgress struct {
	BudgetID   string          `json:"budgetID"`
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	Color      string          `json:"color"`
	Amount     decimal.Decimal `json:"amount"`
	Spent      decimal.Decimal `json:"spent"`
	Remaining  decimal.Decimal `json:"remaining"`
	Percentage decimal.Decimal `json:"percentage"`
	Status     BudgetStatus    `json:"status"`
}
