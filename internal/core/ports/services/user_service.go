package services

import (
	"context"

	"github.com/kash-money/kash_backend/internal/core/domain"
)

// UserSvcFacade defines user profile operations exposed to handlers.
type UserSvcFacade interface {
	// GetUserByID retrieves a user's profile.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// SyncOAuthUser creates or refreshes a user from identity-provider
	// claims and returns the stored record.
	SyncOAuthUser(ctx context.Context, provider domain.AuthProvider, providerUserID, email, name string) (*domain.User, error)
}
