package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/kash-money/kash_backend/internal/apperrors"
	"github.com/kash-money/kash_backend/internal/core/domain"
	portsrepo "github.com/kash-money/kash_backend/internal/core/ports/repositories"
	portssvc "github.com/kash-money/kash_backend/internal/core/ports/services"
)

type CategoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepository
}

func NewCategoryService(repo portsrepo.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: repo}
}

// Ensure CategoryService implements portssvc.CategorySvcFacade
var _ portssvc.CategorySvcFacade = (*CategoryService)(nil)

func validateCategoryKind(k domain.CategoryKind) error {
	switch k {
	case domain.CategoryIncome, domain.CategoryExpense:
		return nil
	default:
		return fmt.Errorf("%w: invalid category kind %q", apperrors.ErrValidation, k)
	}
}

// CreateCategory adds a labelling category. Kind is fixed for the lifetime of
// the category; there is no income/expense reassignment path.
func (s *CategoryService) CreateCategory(ctx context.Context, userID string, params portssvc.CreateCategoryParams) (*domain.Category, error) {
	if err := validateCategoryKind(params.Kind); err != nil {
		return nil, err
	}

	now := time.Now()
	category := domain.Category{
		CategoryID: uuid.NewString(),
		UserID:     userID,
		Name:       params.Name,
		Kind:       params.Kind,
		Color:      params.Color,
		Icon:       params.Icon,
		IsDefault:  false,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save category in repository", slog.String("category_id", category.CategoryID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Category created", slog.String("category_id", category.CategoryID))
	return &category, nil
}

func (s *CategoryService) GetCategoryByID(ctx context.Context, userID, categoryID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, userID, categoryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find category by ID in repository", slog.String("category_id", categoryID))
		}
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) ListCategories(ctx context.Context, userID string, kind *domain.CategoryKind) ([]domain.Category, error) {
	if kind != nil {
		if err := validateCategoryKind(*kind); err != nil {
			return nil, err
		}
	}

	categories, err := s.categoryRepo.ListCategories(ctx, userID, kind)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories from repository")
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	return categories, nil
}

// UpdateCategory applies the non-nil display fields. Kind is immutable.
func (s *CategoryService) UpdateCategory(ctx context.Context, userID, categoryID string, params portssvc.UpdateCategoryParams) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, userID, categoryID)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		category.Name = *params.Name
	}
	if params.Color != nil {
		category.Color = *params.Color
	}
	if params.Icon != nil {
		category.Icon = *params.Icon
	}
	category.LastUpdatedAt = time.Now()

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "Failed to update category in repository", slog.String("category_id", categoryID))
		return nil, err
	}

	s.LogInfo(ctx, "Category updated", slog.String("category_id", categoryID))
	return category, nil
}

// DeleteCategory removes a category. Transactions and budgets that reference
// it are kept; the schema nulls their category reference, so ledger history
// and account balances are untouched.
func (s *CategoryService) DeleteCategory(ctx context.Context, userID, categoryID string) error {
	if err := s.categoryRepo.DeleteCategory(ctx, userID, categoryID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete category in repository", slog.String("category_id", categoryID))
		}
		return err
	}

	s.LogInfo(ctx, "Category deleted", slog.String("category_id", categoryID))
	return nil
}
