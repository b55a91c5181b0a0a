package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType classifies a financial account.
type AccountType string

const (
	Bank       AccountType = "bank"
	Cash       AccountType = "cash"
	CreditCard AccountType = "credit_card"
	Savings    AccountType = "savings"
	Investment AccountType = "investment"
)

// Account represents a financial account owned by a single user.
//
// Balance is the persisted cached balance: it always equals the account's
// opening balance plus the signed sum of every non-deleted transaction that
// references it. The ledger service maintains it incrementally inside the
// same atomic unit as each transaction mutation; it is never recomputed
// wholesale on read.
type Account struct {
	AccountID string          `json:"accountID"` // Primary Key (UUID)
	UserID    string          `json:"userID"`    // Owning user, FK -> users.id
	Name      string          `json:"name"`
	Type      AccountType     `json:"type"`
	Balance   decimal.Decimal `json:"balance"`
	Currency  string          `json:"currency"` // ISO 4217 code
	Color     string          `json:"color"`
	Icon      string          `json:"icon"`
	IsActive  bool            `json:"isActive"` // Soft-delete flag; deactivated accounts keep their transactions
	AuditFields
}
