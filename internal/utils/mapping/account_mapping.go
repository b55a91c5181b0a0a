package mapping

import (
	"github.com/kash-money/kash_backend/internal/core/domain"
	"github.com/kash-money/kash_backend/internal/models"
)

// ToModelAccount converts a domain account to its DB representation.
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID: d.AccountID,
		UserID:    d.UserID,
		Name:      d.Name,
		Type:      models.AccountType(d.Type),
		Balance:   d.Balance,
		Currency:  d.Currency,
		Color:     d.Color,
		Icon:      d.Icon,
		IsActive:  d.IsActive,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainAccount converts a DB account row to the domain representation.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID: m.AccountID,
		UserID:    m.UserID,
		Name:      m.Name,
		Type:      domain.AccountType(m.Type),
		Balance:   m.Balance,
		Currency:  m.Currency,
		Color:     m.Color,
		Icon:      m.Icon,
		IsActive:  m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// ToDomainAccountSlice converts a slice of account rows.
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
