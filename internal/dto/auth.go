package dto

import (
	"time"

	"github.com/kash-money/kash_backend/internal/core/domain"
	portssvc "github.com/kash-money/kash_backend/internal/core/ports/services"
)

// ExchangeCodeRequest defines the JSON body for the Google exchange-code
// endpoint.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// UserResponse defines the data returned for a user profile.
type UserResponse struct {
	UserID    string    `json:"userID"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}

// ExchangeCodeResponse defines the successful response for the exchange-code
// endpoint.
type ExchangeCodeResponse struct {
	Token     string       `json:"token"`
	ExpiresIn int64        `json:"expiresIn"`
	User      UserResponse `json:"user"`
}

// ToExchangeCodeResponse converts a completed sign-in to its response DTO.
func ToExchangeCodeResponse(res *portssvc.AuthResult) ExchangeCodeResponse {
	return ExchangeCodeResponse{
		Token:     res.AccessToken,
		ExpiresIn: res.ExpiresIn,
		User:      ToUserResponse(&res.User),
	}
}
