package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/kash-money/kash_backend/internal/apperrors"
	"github.com/kash-money/kash_backend/internal/core/domain"
	portsrepo "github.com/kash-money/kash_backend/internal/core/ports/repositories"
	portssvc "github.com/kash-money/kash_backend/internal/core/ports/services"
)

// LedgerService owns every transaction mutation. It computes the balance
// delta each mutation must apply and hands the write to the repository,
// which persists the row and the account balance as one atomic unit. No
// other code path is allowed to move an account balance.
type LedgerService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepository
	categoryRepo    portsrepo.CategoryRepository
}

func NewLedgerService(transactionRepo portsrepo.TransactionRepository, categoryRepo portsrepo.CategoryRepository) *LedgerService {
	return &LedgerService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// Ensure LedgerService implements portssvc.LedgerSvcFacade
var _ portssvc.LedgerSvcFacade = (*LedgerService)(nil)

// validateCategoryRef checks that a referenced category exists and belongs
// to the user. A dangling reference is a validation error, not a 404: the
// transaction is the resource being acted on.
func (s *LedgerService) validateCategoryRef(ctx context.Context, userID string, categoryID *string) error {
	if categoryID == nil {
		return nil
	}
	_, err := s.categoryRepo.FindCategoryByID(ctx, userID, *categoryID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("%w: category %s does not exist", apperrors.ErrValidation, *categoryID)
	}
	return err
}

// CreateTransaction records a new income or expense entry and applies its
// signed effect to the account balance atomically.
func (s *LedgerService) CreateTransaction(ctx context.Context, userID string, params portssvc.CreateTransactionParams) (*domain.Transaction, error) {
	if err := validateNonNegativeMoney(params.Amount, "amount"); err != nil {
		return nil, err
	}

	effect, err := domain.SignedEffect(params.Kind, params.Amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	if err := s.validateCategoryRef(ctx, userID, params.CategoryID); err != nil {
		return nil, err
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		AccountID:     params.AccountID,
		CategoryID:    params.CategoryID,
		Kind:          params.Kind,
		Amount:        params.Amount,
		Description:   params.Description,
		Date:          params.Date,
		Tags:          params.Tags,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.transactionRepo.CreateTransaction(ctx, txn, effect); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to create transaction in repository", slog.String("transaction_id", txn.TransactionID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("account_id", txn.AccountID),
		slog.String("kind", string(txn.Kind)))
	return &txn, nil
}

func (s *LedgerService) GetTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction by ID in repository", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	return txn, nil
}

func (s *LedgerService) ListTransactions(ctx context.Context, userID string, filter portsrepo.TransactionFilter) ([]domain.Transaction, int, error) {
	if filter.Kind != nil {
		switch *filter.Kind {
		case domain.Income, domain.Expense:
		default:
			return nil, 0, fmt.Errorf("%w: invalid kind filter %q", apperrors.ErrValidation, *filter.Kind)
		}
	}

	txns, total, err := s.transactionRepo.ListTransactions(ctx, userID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions from repository")
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}
	return txns, total, nil
}

// UpdateTransaction applies the provided fields to an existing transaction
// and moves the account balance by the difference between the new and old
// signed effects. Kind and account are immutable; changing direction means
// delete and recreate.
func (s *LedgerService) UpdateTransaction(ctx context.Context, userID, transactionID string, params portssvc.UpdateTransactionParams) (*domain.Transaction, error) {
	existing, err := s.transactionRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		return nil, err
	}

	oldEffect, err := existing.SignedEffect()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	updated := *existing
	if params.CategorySet {
		if err := s.validateCategoryRef(ctx, userID, params.CategoryID); err != nil {
			return nil, err
		}
		updated.CategoryID = params.CategoryID
	}
	if params.Amount != nil {
		if err := validateNonNegativeMoney(*params.Amount, "amount"); err != nil {
			return nil, err
		}
		updated.Amount = *params.Amount
	}
	if params.Description != nil {
		updated.Description = *params.Description
	}
	if params.Date != nil {
		updated.Date = *params.Date
	}
	if params.Tags != nil {
		updated.Tags = *params.Tags
	}
	updated.LastUpdatedAt = time.Now()

	// The kind is unchanged, so the new effect reuses it with the (possibly
	// new) amount.
	newEffect, err := domain.SignedEffect(updated.Kind, updated.Amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	delta := newEffect.Sub(oldEffect)

	if err := s.transactionRepo.UpdateTransaction(ctx, updated, delta); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to update transaction in repository", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Transaction updated",
		slog.String("transaction_id", transactionID),
		slog.String("balance_delta", delta.String()))
	return &updated, nil
}

// DeleteTransaction removes an entry and reverses its effect on the account
// balance, restoring the balance to what it would be had the transaction
// never existed.
func (s *LedgerService) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	existing, err := s.transactionRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		return err
	}

	effect, err := existing.SignedEffect()
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	reversal := effect.Neg()

	if err := s.transactionRepo.DeleteTransaction(ctx, *existing, reversal); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete transaction in repository", slog.String("transaction_id", transactionID))
		}
		return err
	}

	s.LogInfo(ctx, "Transaction deleted",
		slog.String("transaction_id", transactionID),
		slog.String("balance_delta", reversal.String()))
	return nil
}
