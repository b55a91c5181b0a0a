package mapping

import (
	"github.com/kash-money/kash_backend/internal/core/domain"
	"github.com/kash-money/kash_backend/internal/models"
)

// ToModelCategory converts a domain category to its DB representation.
func ToModelCategory(d domain.Category) models.Category {
	return models.Category{
		CategoryID: d.CategoryID,
		UserID:     d.UserID,
		Name:       d.Name,
		Kind:       models.CategoryKind(d.Kind),
		Color:      d.Color,
		Icon:       d.Icon,
		IsDefault:  d.IsDefault,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainCategory converts a DB category row to the domain representation.
func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID: m.CategoryID,
		UserID:     m.UserID,
		Name:       m.Name,
		Kind:       domain.CategoryKind(m.Kind),
		Color:      m.Color,
		Icon:       m.Icon,
		IsDefault:  m.IsDefault,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// ToDomainCategorySlice converts a slice of category rows.
func ToDomainCategorySlice(ms []models.Category) []domain.Category {
	ds := make([]domain.Category, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCategory(m)
	}
	return ds
}
