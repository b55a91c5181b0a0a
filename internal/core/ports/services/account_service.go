package services

import (
	"context"

	"github.com/kash-money/kash_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountParams carries validated input for account creation.
type CreateAccountParams struct {
	Name     string
	Type     domain.AccountType
	Balance  decimal.Decimal
	Currency string
	Color    string
	Icon     string
}

// UpdateAccountParams carries partial updates for an account. Nil fields are
// left unchanged. Balance is absent on purpose: balances move only through
// ledger operations.
type UpdateAccountParams struct {
	Name     *string
	Color    *string
	Icon     *string
	IsActive *bool
}

// AccountSvcFacade defines account operations exposed to handlers.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, userID string, params CreateAccountParams) (*domain.Account, error)
	GetAccountByID(ctx context.Context, userID, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context, userID string) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, userID, accountID string, params UpdateAccountParams) (*domain.Account, error)
	DeactivateAccount(ctx context.Context, userID, accountID string) error
}
