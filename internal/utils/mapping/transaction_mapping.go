package mapping

import (
	"github.com/kash-money/kash_backend/internal/core/domain"
	"github.com/kash-money/kash_backend/internal/models"
)

// ToModelTransaction converts a domain transaction to its DB representation.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		UserID:        d.UserID,
		AccountID:     d.AccountID,
		CategoryID:    d.CategoryID,
		Kind:          models.TransactionKind(d.Kind),
		Amount:        d.Amount,
		Description:   d.Description,
		Date:          d.Date,
		Tags:          d.Tags,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainTransaction converts a DB transaction row to the domain
// representation, carrying joined display columns when present.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	d := domain.Transaction{
		TransactionID: m.TransactionID,
		UserID:        m.UserID,
		AccountID:     m.AccountID,
		CategoryID:    m.CategoryID,
		Kind:          domain.TransactionKind(m.Kind),
		Amount:        m.Amount,
		Description:   m.Description,
		Date:          m.Date,
		Tags:          m.Tags,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
	if m.CategoryName != nil {
		d.CategoryName = *m.CategoryName
	}
	if m.AccountName != nil {
		d.AccountName = *m.AccountName
	}
	return d
}

// ToDomainTransactionSlice converts a slice of transaction rows.
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
