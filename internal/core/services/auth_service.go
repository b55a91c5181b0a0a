package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kash-money/kash_backend/internal/apperrors"
	"github.com/kash-money/kash_backend/internal/core/domain"
	portssvc "github.com/kash-money/kash_backend/internal/core/ports/services"
	"github.com/kash-money/kash_backend/internal/platform/config"
	"github.com/kash-money/kash_backend/internal/utils"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// AuthService completes the Google sign-in flow: it exchanges the
// authorization code the frontend received, verifies Google's ID token,
// syncs the user record and issues the API's own JWT.
type AuthService struct {
	BaseService
	cfg      *config.Config
	oauthCfg *oauth2.Config
	userSvc  portssvc.UserSvcFacade

	// validateIDToken is swappable so tests can avoid calling Google's
	// certificate endpoint.
	validateIDToken func(ctx context.Context, token, audience string) (*idtoken.Payload, error)
}

func NewAuthService(cfg *config.Config, userSvc portssvc.UserSvcFacade) *AuthService {
	return &AuthService{
		cfg: cfg,
		oauthCfg: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		userSvc:         userSvc,
		validateIDToken: idtoken.Validate,
	}
}

// Ensure AuthService implements portssvc.AuthSvcFacade
var _ portssvc.AuthSvcFacade = (*AuthService)(nil)

// ExchangeGoogleCode swaps the authorization code for Google tokens,
// validates the ID token against our client ID, syncs the user and returns
// a signed access token.
func (s *AuthService) ExchangeGoogleCode(ctx context.Context, code string) (*portssvc.AuthResult, error) {
	token, err := s.oauthCfg.Exchange(ctx, code)
	if err != nil {
		s.LogError(ctx, err, "Failed to exchange authorization code with Google")
		return nil, fmt.Errorf("%w: invalid or expired authorization code", apperrors.ErrValidation)
	}

	idTokenString, ok := token.Extra("id_token").(string)
	if !ok || idTokenString == "" {
		s.LogError(ctx, fmt.Errorf("id_token missing"), "ID token not found in Google's token response")
		return nil, fmt.Errorf("%w: failed to retrieve ID token from Google", apperrors.ErrInternal)
	}

	payload, err := s.validateIDToken(ctx, idTokenString, s.cfg.GoogleClientID)
	if err != nil {
		s.LogError(ctx, err, "Google ID token validation failed")
		return nil, fmt.Errorf("%w: invalid Google ID token", apperrors.ErrForbidden)
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	providerUserID := payload.Subject
	if email == "" || providerUserID == "" {
		s.LogError(ctx, fmt.Errorf("missing claims"), "Essential claims missing from Google ID token payload")
		return nil, fmt.Errorf("%w: essential user information missing from Google token", apperrors.ErrInternal)
	}

	user, err := s.userSvc.SyncOAuthUser(ctx, domain.ProviderGoogle, providerUserID, email, name)
	if err != nil {
		return nil, err
	}

	accessToken, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("%w: failed to generate access token", apperrors.ErrInternal)
	}

	s.LogInfo(ctx, "User signed in via Google", slog.String("user_id", user.UserID))
	return &portssvc.AuthResult{
		User:        *user,
		AccessToken: accessToken,
		ExpiresIn:   int64(s.cfg.JWTExpiryDuration.Seconds()),
	}, nil
}
