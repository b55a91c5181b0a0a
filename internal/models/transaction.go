package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind mirrors the transactions.kind enum.
type TransactionKind string

// Transaction mirrors the transactions table. Amount is always non-negative;
// the balance effect's sign comes from Kind.
type Transaction struct {
	TransactionID string
	UserID        string
	AccountID     string
	CategoryID    *string
	Kind          TransactionKind
	Amount        decimal.Decimal
	Description   string
	Date          time.Time
	Tags          string
	AuditFields

	// Joined columns for list/detail reads.
	CategoryName *string
	AccountName  *string
}
