package services

import (
	"context"

	"github.com/kash-money/kash_backend/internal/core/domain"
)

// CreateCategoryParams carries validated input for category creation.
type CreateCategoryParams struct {
	Name  string
	Kind  domain.CategoryKind
	Color string
	Icon  string
}

// UpdateCategoryParams carries partial updates for a category. Kind is
// immutable after creation.
type UpdateCategoryParams struct {
	Name  *string
	Color *string
	Icon  *string
}

// CategorySvcFacade defines category operations exposed to handlers.
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, userID string, params CreateCategoryParams) (*domain.Category, error)
	GetCategoryByID(ctx context.Context, userID, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context, userID string, kind *domain.CategoryKind) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, userID, categoryID string, params UpdateCategoryParams) (*domain.Category, error)
	DeleteCategory(ctx context.Context, userID, categoryID string) error
}
