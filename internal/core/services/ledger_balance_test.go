package services_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kash-money/kash_backend/internal/apperrors"
	"github.com/kash-money/kash_backend/internal/core/domain"
	portsrepo "github.com/kash-money/kash_backend/internal/core/ports/repositories"
	portssvc "github.com/kash-money/kash_backend/internal/core/ports/services"
	"github.com/kash-money/kash_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLedgerRepo is an in-memory TransactionRepository that applies each
// write and its balance delta under one lock, the way the SQL implementation
// does inside a database transaction. It lets the balance invariant be
// checked across many interleaved mutations.
type fakeLedgerRepo struct {
	mu      sync.Mutex
	txns    map[string]domain.Transaction
	balance decimal.Decimal
}

func newFakeLedgerRepo(openingBalance decimal.Decimal) *fakeLedgerRepo {
	return &fakeLedgerRepo{
		txns:    make(map[string]domain.Transaction),
		balance: openingBalance,
	}
}

func (f *fakeLedgerRepo) FindTransactionByID(_ context.Context, userID, transactionID string) (*domain.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	txn, ok := f.txns[transactionID]
	if !ok || txn.UserID != userID {
		return nil, fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
	}
	return &txn, nil
}

func (f *fakeLedgerRepo) ListTransactions(_ context.Context, userID string, _ portsrepo.TransactionFilter) ([]domain.Transaction, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Transaction
	for _, txn := range f.txns {
		if txn.UserID == userID {
			out = append(out, txn)
		}
	}
	return out, len(out), nil
}

func (f *fakeLedgerRepo) CreateTransaction(_ context.Context, txn domain.Transaction, balanceDelta decimal.Decimal) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.txns[txn.TransactionID] = txn
	f.balance = f.balance.Add(balanceDelta)
	return nil
}

func (f *fakeLedgerRepo) UpdateTransaction(_ context.Context, txn domain.Transaction, balanceDelta decimal.Decimal) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.txns[txn.TransactionID]; !ok {
		return fmt.Errorf("transaction %s: %w", txn.TransactionID, apperrors.ErrNotFound)
	}
	f.txns[txn.TransactionID] = txn
	f.balance = f.balance.Add(balanceDelta)
	return nil
}

func (f *fakeLedgerRepo) DeleteTransaction(_ context.Context, txn domain.Transaction, balanceDelta decimal.Decimal) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.txns[txn.TransactionID]; !ok {
		return fmt.Errorf("transaction %s: %w", txn.TransactionID, apperrors.ErrNotFound)
	}
	delete(f.txns, txn.TransactionID)
	f.balance = f.balance.Add(balanceDelta)
	return nil
}

func (f *fakeLedgerRepo) currentBalance() decimal.Decimal {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.balance
}

// TestLedger_BalanceMatchesSumOfEffects drives the full mutation surface and
// checks that the account balance always equals the opening balance plus the
// sum of the surviving transactions' signed effects.
func TestLedger_BalanceMatchesSumOfEffects(t *testing.T) {
	ctx := context.Background()
	userID := uuid.NewString()
	accountID := uuid.NewString()
	repo := newFakeLedgerRepo(decimal.Zero)
	svc := services.NewLedgerService(repo, new(MockCategoryRepository))

	income, err := svc.CreateTransaction(ctx, userID, portssvc.CreateTransactionParams{
		AccountID: accountID,
		Kind:      domain.Income,
		Amount:    decimal.NewFromInt(100),
		Date:      time.Now(),
	})
	require.NoError(t, err)

	expense, err := svc.CreateTransaction(ctx, userID, portssvc.CreateTransactionParams{
		AccountID: accountID,
		Kind:      domain.Expense,
		Amount:    decimal.NewFromInt(30),
		Date:      time.Now(),
	})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(70).Equal(repo.currentBalance()), "after +100/-30: got %s", repo.currentBalance())

	// Raising the expense to 45 must pull the balance down by the difference.
	newAmount := decimal.NewFromInt(45)
	_, err = svc.UpdateTransaction(ctx, userID, expense.TransactionID, portssvc.UpdateTransactionParams{Amount: &newAmount})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(55).Equal(repo.currentBalance()), "after update: got %s", repo.currentBalance())

	// Deleting both entries must restore the opening balance exactly.
	require.NoError(t, svc.DeleteTransaction(ctx, userID, expense.TransactionID))
	require.NoError(t, svc.DeleteTransaction(ctx, userID, income.TransactionID))
	assert.True(t, repo.currentBalance().IsZero(), "after deletes: got %s", repo.currentBalance())
}

// TestLedger_ConcurrentMutationsKeepBalanceConsistent interleaves creates and
// deletes from many goroutines; whatever the ordering, the final balance must
// equal the sum of the surviving rows' effects.
func TestLedger_ConcurrentMutationsKeepBalanceConsistent(t *testing.T) {
	ctx := context.Background()
	userID := uuid.NewString()
	accountID := uuid.NewString()
	repo := newFakeLedgerRepo(decimal.Zero)
	svc := services.NewLedgerService(repo, new(MockCategoryRepository))

	const workers = 8
	const perWorker = 25

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				// Each iteration nets +7: +10 income, -3 expense.
				_, err := svc.CreateTransaction(ctx, userID, portssvc.CreateTransactionParams{
					AccountID: accountID,
					Kind:      domain.Income,
					Amount:    decimal.NewFromInt(10),
					Date:      time.Now(),
				})
				assert.NoError(t, err)
				_, err = svc.CreateTransaction(ctx, userID, portssvc.CreateTransactionParams{
					AccountID: accountID,
					Kind:      domain.Expense,
					Amount:    decimal.NewFromInt(3),
					Date:      time.Now(),
				})
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	want := decimal.NewFromInt(workers * perWorker * 7)
	assert.True(t, want.Equal(repo.currentBalance()), "want %s, got %s", want, repo.currentBalance())

	_, total, err := repo.ListTransactions(ctx, userID, portsrepo.TransactionFilter{})
	require.NoError(t, err)
	assert.Equal(t, workers*perWorker*2, total)
}
