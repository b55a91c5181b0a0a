package repositories

import (
	"context"
	"time"

	"github.com/kash-money/kash_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionFilter narrows transaction list queries.
type TransactionFilter struct {
	AccountID  *string
	CategoryID *string
	Kind       *domain.TransactionKind
	StartDate  *time.Time
	EndDate    *time.Time
	Limit      int
	Offset     int
}

// TransactionReader defines read operations for transaction data.
type TransactionReader interface {
	// FindTransactionByID retrieves one of the user's transactions with its
	// joined category and account names.
	FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a filtered page of the user's transactions
	// (date descending) and the total number of rows matching the filter.
	ListTransactions(ctx context.Context, userID string, filter TransactionFilter) ([]domain.Transaction, int, error)
}

// LedgerWriter defines the atomic transaction-plus-balance mutations. Each
// method executes the row write and the account balance adjustment by
// balanceDelta as one database transaction: both commit or both roll back.
// The account row is locked for the duration, serializing concurrent
// mutations against the same account.
type LedgerWriter interface {
	// CreateTransaction inserts txn and applies balanceDelta to its account.
	CreateTransaction(ctx context.Context, txn domain.Transaction, balanceDelta decimal.Decimal) error

	// UpdateTransaction rewrites txn's mutable fields and applies
	// balanceDelta (new signed effect minus old) to its account.
	UpdateTransaction(ctx context.Context, txn domain.Transaction, balanceDelta decimal.Decimal) error

	// DeleteTransaction removes txn's row and applies balanceDelta (the
	// reversal of its signed effect) to its account.
	DeleteTransaction(ctx context.Context, txn domain.Transaction, balanceDelta decimal.Decimal) error
}

// TransactionRepository combines transaction reads with ledger writes.
type TransactionRepository interface {
	TransactionReader
	LedgerWriter
}
