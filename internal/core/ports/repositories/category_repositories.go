package repositories

import (
	"context"

	"github.com/kash-money/kash_backend/internal/core/domain"
)

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	// SaveCategory persists a new category.
	SaveCategory(ctx context.Context, category domain.Category) error

	// FindCategoryByID retrieves one of the user's categories.
	FindCategoryByID(ctx context.Context, userID, categoryID string) (*domain.Category, error)

	// ListCategories retrieves the user's categories ordered by name,
	// optionally filtered by kind.
	ListCategories(ctx context.Context, userID string, kind *domain.CategoryKind) ([]domain.Category, error)

	// UpdateCategory updates a category's display fields. Kind is immutable.
	UpdateCategory(ctx context.Context, category domain.Category) error

	// DeleteCategory removes a category. Referencing transactions and
	// budgets keep their rows with the category reference nulled out.
	DeleteCategory(ctx context.Context, userID, categoryID string) error
}
