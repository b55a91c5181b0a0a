package repositories

import (
	"context"

	"github.com/kash-money/kash_backend/internal/core/domain"
)

// UserRepository defines persistence operations for identity-provider users.
type UserRepository interface {
	// FindUserByID retrieves a user by internal ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByProviderID retrieves a user by (provider, provider subject).
	FindUserByProviderID(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error)

	// SaveUser persists a new user synced from the identity provider.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser refreshes the provider-synced profile fields.
	UpdateUser(ctx context.Context, user domain.User) error
}
