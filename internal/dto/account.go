package dto

import (
	"time"

	"github.com/kash-money/kash_backend/internal/core/domain"
	portssvc "github.com/kash-money/kash_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name     string             `json:"name" binding:"required"`
	Type     domain.AccountType `json:"type" binding:"required,oneof=bank cash credit_card savings investment"`
	Balance  decimal.Decimal    `json:"balance"` // Opening balance, may be negative
	Currency string             `json:"currency" binding:"required,len=3"`
	Color    string             `json:"color"`
	Icon     string             `json:"icon"`
}

// ToParams converts the request to service-layer parameters.
func (r CreateAccountRequest) ToParams() portssvc.CreateAccountParams {
	return portssvc.CreateAccountParams{
		Name:     r.Name,
		Type:     r.Type,
		Balance:  r.Balance,
		Currency: r.Currency,
		Color:    r.Color,
		Icon:     r.Icon,
	}
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Pointers distinguish zero-value updates from fields not provided. Balance
// is absent: it only moves through transaction mutations.
type UpdateAccountRequest struct {
	Name     *string `json:"name"`
	Color    *string `json:"color"`
	Icon     *string `json:"icon"`
	IsActive *bool   `json:"isActive"`
}

// ToParams converts the request to service-layer parameters.
func (r UpdateAccountRequest) ToParams() portssvc.UpdateAccountParams {
	return portssvc.UpdateAccountParams{
		Name:     r.Name,
		Color:    r.Color,
		Icon:     r.Icon,
		IsActive: r.IsActive,
	}
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID     string             `json:"accountID"`
	Name          string             `json:"name"`
	Type          domain.AccountType `json:"type"`
	Balance       decimal.Decimal    `json:"balance"`
	Currency      string             `json:"currency"`
	Color         string             `json:"color"`
	Icon          string             `json:"icon"`
	IsActive      bool               `json:"isActive"`
	CreatedAt     time.Time          `json:"createdAt"`
	LastUpdatedAt time.Time          `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     acc.AccountID,
		Name:          acc.Name,
		Type:          acc.Type,
		Balance:       acc.Balance,
		Currency:      acc.Currency,
		Color:         acc.Color,
		Icon:          acc.Icon,
		IsActive:      acc.IsActive,
		CreatedAt:     acc.CreatedAt,
		LastUpdatedAt: acc.LastUpdatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account to response DTOs.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}
