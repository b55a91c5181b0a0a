package repositories

import (
	"context"
	"time"

	"github.com/kash-money/kash_backend/internal/core/domain"
)

// AccountReader defines read operations for account data. Every operation is
// scoped to the owning user; an account that exists but belongs to another
// user is reported as not found.
type AccountReader interface {
	// FindAccountByID retrieves one of the user's accounts.
	FindAccountByID(ctx context.Context, userID, accountID string) (*domain.Account, error)

	// ListAccounts retrieves the user's active accounts, newest first.
	ListAccounts(ctx context.Context, userID string) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data.
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates an existing account's mutable fields.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeactivateAccount soft-deletes an account. Its transactions are kept
	// for historical reporting.
	DeactivateAccount(ctx context.Context, userID, accountID string, now time.Time) error
}

// AccountRepository combines all account-related repository operations.
type AccountRepository interface {
	AccountReader
	AccountWriter
}
