package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kash-money/kash_backend/internal/apperrors"
	"github.com/kash-money/kash_backend/internal/core/domain"
	portsrepo "github.com/kash-money/kash_backend/internal/core/ports/repositories"
	"github.com/kash-money/kash_backend/internal/models"
	"github.com/kash-money/kash_backend/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

type PgxAccountRepository struct {
	pool *pgxpool.Pool
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepository {
	return &PgxAccountRepository{pool: pool}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepository
var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

const accountColumns = `account_id, user_id, name, type, balance, currency, color, icon, is_active, created_at, last_updated_at`

func scanAccount(row pgx.Row) (models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.UserID,
		&m.Name,
		&m.Type,
		&m.Balance,
		&m.Currency,
		&m.Color,
		&m.Icon,
		&m.IsActive,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// SaveAccount inserts a new account with its opening balance.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)

	query := `
		INSERT INTO accounts (account_id, user_id, name, type, balance, currency, color, icon, is_active, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.pool.Exec(ctx, query,
		m.AccountID,
		m.UserID,
		m.Name,
		m.Type,
		m.Balance,
		m.Currency,
		m.Color,
		m.Icon,
		m.IsActive,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return translatePgError(err, fmt.Sprintf("failed to save account %s", m.AccountID))
	}
	return nil
}

// FindAccountByID retrieves one of the user's accounts.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, userID, accountID string) (*domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE account_id = $1 AND user_id = $2;
	`
	m, err := scanAccount(r.pool.QueryRow(ctx, query, accountID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by ID %s: %w", accountID, err)
	}

	acc := mapping.ToDomainAccount(m)
	return &acc, nil
}

// ListAccounts retrieves the user's active accounts, newest first.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE user_id = $1 AND is_active = TRUE
		ORDER BY created_at DESC;
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts for user %s: %w", userID, err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row for user %s: %w", userID, err)
		}
		accounts = append(accounts, mapping.ToDomainAccount(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating account rows for user %s: %w", userID, rows.Err())
	}

	return accounts, nil
}

// UpdateAccount updates an account's display fields and active flag. Balance
// is deliberately excluded: it moves only inside ledger transactions.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)

	query := `
		UPDATE accounts
		SET name = $3, color = $4, icon = $5, is_active = $6, last_updated_at = $7
		WHERE account_id = $1 AND user_id = $2;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		m.AccountID,
		m.UserID,
		m.Name,
		m.Color,
		m.Icon,
		m.IsActive,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update account %s: %w", m.AccountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeactivateAccount marks an account as inactive. Transaction rows are kept
// so historical reports stay intact.
func (r *PgxAccountRepository) DeactivateAccount(ctx context.Context, userID, accountID string, now time.Time) error {
	query := `
		UPDATE accounts
		SET is_active = FALSE, last_updated_at = $3
		WHERE account_id = $1 AND user_id = $2 AND is_active = TRUE;
	`
	cmdTag, err := r.pool.Exec(ctx, query, accountID, userID, now)
	if err != nil {
		return fmt.Errorf("failed to execute deactivate account %s: %w", accountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Either the account doesn't exist or it is already inactive.
		_, findErr := r.FindAccountByID(ctx, userID, accountID)
		if errors.Is(findErr, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		} else if findErr != nil {
			return fmt.Errorf("failed to check account status after deactivation attempt for %s: %w", accountID, findErr)
		}
		return fmt.Errorf("%w: account %s is already inactive", apperrors.ErrValidation, accountID)
	}
	return nil
}

// lockAccountForUpdate loads an account row with FOR UPDATE inside tx,
// serializing concurrent balance mutations against the same account. Must be
// called within a transaction.
func lockAccountForUpdate(ctx context.Context, tx pgx.Tx, userID, accountID string) (models.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE account_id = $1 AND user_id = $2
		FOR UPDATE;
	`
	m, err := scanAccount(tx.QueryRow(ctx, query, accountID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Account{}, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
		}
		return models.Account{}, translatePgError(err, fmt.Sprintf("failed to lock account %s", accountID))
	}
	return m, nil
}

// applyBalanceDeltaInTx adds delta to a locked account's cached balance.
// Must run inside the same transaction that locked the row.
func applyBalanceDeltaInTx(ctx context.Context, tx pgx.Tx, accountID string, delta decimal.Decimal, now time.Time) error {
	if delta.IsZero() {
		return nil
	}
	query := `
		UPDATE accounts
		SET balance = balance + $2, last_updated_at = $3
		WHERE account_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query, accountID, delta, now)
	if err != nil {
		return translatePgError(err, fmt.Sprintf("failed to update balance for account %s", accountID))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %s not found during balance update", apperrors.ErrNotFound, accountID)
	}
	return nil
}
