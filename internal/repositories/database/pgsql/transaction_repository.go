package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
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

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepository
var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

const transactionColumns = `t.transaction_id, t.user_id, t.account_id, t.category_id, t.kind, t.amount, t.description, t.date, t.tags, t.created_at, t.last_updated_at, c.name AS category_name, a.name AS account_name`

const transactionJoins = `
	FROM transactions t
	LEFT JOIN categories c ON c.category_id = t.category_id
	JOIN accounts a ON a.account_id = t.account_id`

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.UserID,
		&m.AccountID,
		&m.CategoryID,
		&m.Kind,
		&m.Amount,
		&m.Description,
		&m.Date,
		&m.Tags,
		&m.CreatedAt,
		&m.LastUpdatedAt,
		&m.CategoryName,
		&m.AccountName,
	)
	return m, err
}

// CreateTransaction inserts the transaction row and applies balanceDelta to
// its account as one database transaction. The account row is locked first,
// so concurrent mutations against the same account serialize here.
func (r *PgxTransactionRepository) CreateTransaction(ctx context.Context, txn domain.Transaction, balanceDelta decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	account, err := lockAccountForUpdate(ctx, tx, txn.UserID, txn.AccountID)
	if err != nil {
		return err
	}
	if !account.IsActive {
		return fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, txn.AccountID)
	}

	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (transaction_id, user_id, account_id, category_id, kind, amount, description, date, tags, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err = tx.Exec(ctx, query,
		m.TransactionID,
		m.UserID,
		m.AccountID,
		m.CategoryID,
		m.Kind,
		m.Amount,
		m.Description,
		m.Date,
		m.Tags,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return translatePgError(err, fmt.Sprintf("failed to insert transaction %s", m.TransactionID))
	}

	if err := applyBalanceDeltaInTx(ctx, tx, txn.AccountID, balanceDelta, txn.LastUpdatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// UpdateTransaction rewrites the row's mutable fields and applies
// balanceDelta to its account atomically. Kind and account are immutable, so
// the delta always targets the original account.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction, balanceDelta decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := lockAccountForUpdate(ctx, tx, txn.UserID, txn.AccountID); err != nil {
		return err
	}

	m := mapping.ToModelTransaction(txn)
	query := `
		UPDATE transactions
		SET category_id = $3, amount = $4, description = $5, date = $6, tags = $7, last_updated_at = $8
		WHERE transaction_id = $1 AND user_id = $2;
	`
	cmdTag, err := tx.Exec(ctx, query,
		m.TransactionID,
		m.UserID,
		m.CategoryID,
		m.Amount,
		m.Description,
		m.Date,
		m.Tags,
		m.LastUpdatedAt,
	)
	if err != nil {
		return translatePgError(err, fmt.Sprintf("failed to update transaction %s", m.TransactionID))
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := applyBalanceDeltaInTx(ctx, tx, txn.AccountID, balanceDelta, txn.LastUpdatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// DeleteTransaction removes the row and applies the reversal delta to its
// account atomically.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, txn domain.Transaction, balanceDelta decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := lockAccountForUpdate(ctx, tx, txn.UserID, txn.AccountID); err != nil {
		return err
	}

	query := `
		DELETE FROM transactions
		WHERE transaction_id = $1 AND user_id = $2;
	`
	cmdTag, err := tx.Exec(ctx, query, txn.TransactionID, txn.UserID)
	if err != nil {
		return translatePgError(err, fmt.Sprintf("failed to delete transaction %s", txn.TransactionID))
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	now := time.Now()
	if err := applyBalanceDeltaInTx(ctx, tx, txn.AccountID, balanceDelta, now); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// FindTransactionByID retrieves one of the user's transactions with joined
// category and account names.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + transactionJoins + `
		WHERE t.transaction_id = $1 AND t.user_id = $2;
	`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}

	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

// ListTransactions retrieves a filtered page of the user's transactions,
// newest date first, plus the unpaginated match count.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, userID string, filter portsrepo.TransactionFilter) ([]domain.Transaction, int, error) {
	conditions := []string{"t.user_id = $1"}
	args := []any{userID}

	addCondition := func(clause string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(clause, len(args)))
	}

	if filter.AccountID != nil {
		addCondition("t.account_id = $%d", *filter.AccountID)
	}
	if filter.CategoryID != nil {
		addCondition("t.category_id = $%d", *filter.CategoryID)
	}
	if filter.Kind != nil {
		addCondition("t.kind = $%d", string(*filter.Kind))
	}
	if filter.StartDate != nil {
		addCondition("t.date >= $%d", *filter.StartDate)
	}
	if filter.EndDate != nil {
		addCondition("t.date <= $%d", *filter.EndDate)
	}

	where := " WHERE " + strings.Join(conditions, " AND ")

	var total int
	countQuery := `SELECT COUNT(*) FROM transactions t` + where
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions for user %s: %w", userID, err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	args = append(args, limit, offset)

	query := `SELECT ` + transactionColumns + transactionJoins + where +
		fmt.Sprintf(" ORDER BY t.date DESC, t.created_at DESC LIMIT $%d OFFSET $%d;", len(args)-1, len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query transactions for user %s: %w", userID, err)
	}
	defer rows.Close()

	ms := []models.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan transaction row for user %s: %w", userID, err)
		}
		ms = append(ms, m)
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("error iterating transaction rows for user %s: %w", userID, rows.Err())
	}

	return mapping.ToDomainTransactionSlice(ms), total, nil
}
