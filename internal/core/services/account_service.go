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

type AccountService struct {
	BaseService
	accountRepo portsrepo.AccountRepository
}

func NewAccountService(repo portsrepo.AccountRepository) *AccountService {
	return &AccountService{accountRepo: repo}
}

// Ensure AccountService implements portssvc.AccountSvcFacade
var _ portssvc.AccountSvcFacade = (*AccountService)(nil)

func validateAccountType(t domain.AccountType) error {
	switch t {
	case domain.Bank, domain.Cash, domain.CreditCard, domain.Savings, domain.Investment:
		return nil
	default:
		return fmt.Errorf("%w: invalid account type %q", apperrors.ErrValidation, t)
	}
}

// CreateAccount opens a new account with its opening balance. The opening
// balance may be negative (credit cards carry debt from day one).
func (s *AccountService) CreateAccount(ctx context.Context, userID string, params portssvc.CreateAccountParams) (*domain.Account, error) {
	if err := validateAccountType(params.Type); err != nil {
		return nil, err
	}
	if err := validateMoneyPrecision(params.Balance, "balance"); err != nil {
		return nil, err
	}

	now := time.Now()
	account := domain.Account{
		AccountID: uuid.NewString(),
		UserID:    userID,
		Name:      params.Name,
		Type:      params.Type,
		Balance:   params.Balance,
		Currency:  params.Currency,
		Color:     params.Color,
		Icon:      params.Icon,
		IsActive:  true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account in repository", slog.String("account_id", account.AccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account created", slog.String("account_id", account.AccountID))
	return &account, nil
}

func (s *AccountService) GetAccountByID(ctx context.Context, userID, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, userID, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID in repository", slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

// ListAccounts retrieves the user's active accounts.
func (s *AccountService) ListAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts from repository")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		accounts = []domain.Account{}
	}
	return accounts, nil
}

// UpdateAccount applies the non-nil fields of params to an existing account.
// Balance is not updatable here; it only moves through ledger operations.
func (s *AccountService) UpdateAccount(ctx context.Context, userID, accountID string, params portssvc.UpdateAccountParams) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		account.Name = *params.Name
	}
	if params.Color != nil {
		account.Color = *params.Color
	}
	if params.Icon != nil {
		account.Icon = *params.Icon
	}
	if params.IsActive != nil {
		account.IsActive = *params.IsActive
	}
	account.LastUpdatedAt = time.Now()

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account in repository", slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account updated", slog.String("account_id", accountID))
	return account, nil
}

// DeactivateAccount soft-deletes an account. Its transactions remain, so
// historical reports are unchanged; the account drops out of listings and
// the total balance.
func (s *AccountService) DeactivateAccount(ctx context.Context, userID, accountID string) error {
	err := s.accountRepo.DeactivateAccount(ctx, userID, accountID, time.Now())
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to deactivate account in repository", slog.String("account_id", accountID))
		}
		return err
	}

	s.LogInfo(ctx, "Account deactivated", slog.String("account_id", accountID))
	return nil
}
