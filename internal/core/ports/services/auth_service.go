package services

import (
	"context"

	"github.com/kash-money/kash_backend/internal/core/domain"
)

// AuthResult is the outcome of a completed sign-in: the synced user and a
// signed API token.
type AuthResult struct {
	User        domain.User
	AccessToken string
	ExpiresIn   int64
}

// AuthSvcFacade defines the sign-in flow exposed to handlers.
type AuthSvcFacade interface {
	// ExchangeGoogleCode swaps an OAuth authorization code for Google
	// tokens, verifies the ID token, syncs the user and issues an API
	// token.
	ExchangeGoogleCode(ctx context.Context, code string) (*AuthResult, error)
}
