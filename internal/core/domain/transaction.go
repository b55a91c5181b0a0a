package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind indicates the financial direction of a transaction.
type TransactionKind string

const (
	Income  TransactionKind = "income"
	Expense TransactionKind = "expense"
	// Transfer is declared in the schema but no mutation path constructs one
	// yet; it is reserved for account-to-account movements.
	Transfer TransactionKind = "transfer"
)

// Transaction is a single dated income or expense entry against an account.
// Amount is stored non-negative; the sign of its effect on the account
// balance is derived from Kind, never stored.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	UserID        string          `json:"userID"`        // Owning user
	AccountID     string          `json:"accountID"`     // FK -> accounts, required
	CategoryID    *string         `json:"categoryID"`    // FK -> categories, nulled on category delete
	Kind          TransactionKind `json:"kind"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Date          time.Time       `json:"date"` // Calendar day, no time component
	Tags          string          `json:"tags"` // Free-text, comma separated
	AuditFields

	// Joined display fields, populated on reads only.
	CategoryName string `json:"categoryName,omitempty"`
	AccountName  string `json:"accountName,omitempty"`
}

// SignedEffect returns the delta this transaction contributes to its
// account's balance: +Amount for income, -Amount for expense.
func (t Transaction) SignedEffect() (decimal.Decimal, error) {
	return SignedEffect(t.Kind, t.Amount)
}

// SignedEffect maps a (kind, amount) pair to its account-balance delta.
// Transfer has no balance semantics until a mutation path exists for it.
func SignedEffect(kind TransactionKind, amount decimal.Decimal) (decimal.Decimal, error) {
	switch kind {
	case Income:
		return amount, nil
	case Expense:
		return amount.Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("transaction kind %q has no balance effect", kind)
	}
}
