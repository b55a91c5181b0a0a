package services

import (
	"context"
	"time"

	"github.com/kash-money/kash_backend/internal/core/domain"
	"github.com/kash-money/kash_backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// CreateTransactionParams carries validated input for recording a
// transaction.
type CreateTransactionParams struct {
	AccountID   string
	CategoryID  *string
	Kind        domain.TransactionKind
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	Tags        string
}

// UpdateTransactionParams carries partial updates for a transaction. Nil
// fields are left unchanged. Kind and AccountID are immutable after
// creation.
type UpdateTransactionParams struct {
	CategoryID  *string
	CategorySet bool
	Amount      *decimal.Decimal
	Description *string
	Date        *time.Time
	Tags        *string
}

// LedgerSvcFacade defines the transaction operations exposed to handlers.
// Every mutation keeps the owning account's balance consistent with the
// sum of its transactions' signed effects.
type LedgerSvcFacade interface {
	CreateTransaction(ctx context.Context, userID string, params CreateTransactionParams) (*domain.Transaction, error)
	GetTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, userID string, filter repositories.TransactionFilter) ([]domain.Transaction, int, error)
	UpdateTransaction(ctx context.Context, userID, transactionID string, params UpdateTransactionParams) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, transactionID string) error
}
