package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/kash-money/kash_backend/internal/apperrors"
	"github.com/kash-money/kash_backend/internal/core/domain"
	portsrepo "github.com/kash-money/kash_backend/internal/core/ports/repositories"
	portssvc "github.com/kash-money/kash_backend/internal/core/ports/services"
)

type UserService struct {
	BaseService
	userRepo portsrepo.UserRepository
}

func NewUserService(repo portsrepo.UserRepository) *UserService {
	return &UserService{userRepo: repo}
}

// Ensure UserService implements portssvc.UserSvcFacade
var _ portssvc.UserSvcFacade = (*UserService)(nil)

func (s *UserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user by ID in repository", slog.String("user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

// SyncOAuthUser creates a user on first sign-in and refreshes the
// provider-synced profile fields on every later one. The provider's subject
// claim is the stable identity key; email and name follow whatever the
// provider currently reports.
func (s *UserService) SyncOAuthUser(ctx context.Context, provider domain.AuthProvider, providerUserID, email, name string) (*domain.User, error) {
	now := time.Now()

	existing, err := s.userRepo.FindUserByProviderID(ctx, provider, providerUserID)
	if err == nil {
		if existing.Email != email || existing.Name != name {
			existing.Email = email
			existing.Name = name
			existing.LastUpdatedAt = now
			if err := s.userRepo.UpdateUser(ctx, *existing); err != nil {
				s.LogError(ctx, err, "Failed to refresh OAuth user profile", slog.String("user_id", existing.UserID))
				return nil, err
			}
		}
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up user by provider ID")
		return nil, err
	}

	user := domain.User{
		UserID:         uuid.NewString(),
		Email:          email,
		Name:           name,
		AuthProvider:   provider,
		ProviderUserID: providerUserID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		// A concurrent first sign-in may have won the insert race.
		if errors.Is(err, apperrors.ErrDuplicate) {
			return s.userRepo.FindUserByProviderID(ctx, provider, providerUserID)
		}
		s.LogError(ctx, err, "Failed to save OAuth user", slog.String("user_id", user.UserID))
		return nil, err
	}

	s.LogInfo(ctx, "User created from OAuth sign-in", slog.String("user_id", user.UserID))
	return &user, nil
}
