package models

import "github.com/shopspring/decimal"

// AccountType mirrors the accounts.type enum.
type AccountType string

// Account mirrors the accounts table.
type Account struct {
	AccountID string
	UserID    string
	Name      string
	Type      AccountType
	Balance   decimal.Decimal
	Currency  string
	Color     string
	Icon      string
	IsActive  bool
	AuditFields
}
