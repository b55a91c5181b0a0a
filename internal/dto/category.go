package dto

import (
	"time"

	"github.com/kash-money/kash_backend/internal/core/domain"
	portssvc "github.com/kash-money/kash_backend/internal/core/ports/services"
)

// CreateCategoryRequest defines the data needed to create a new category.
type CreateCategoryRequest struct {
	Name  string              `json:"name" binding:"required"`
	Kind  domain.CategoryKind `json:"kind" binding:"required,oneof=income expense"`
	Color string              `json:"color"`
	Icon  string              `json:"icon"`
}

// ToParams converts the request to service-layer parameters.
func (r CreateCategoryRequest) ToParams() portssvc.CreateCategoryParams {
	return portssvc.CreateCategoryParams{
		Name:  r.Name,
		Kind:  r.Kind,
		Color: r.Color,
		Icon:  r.Icon,
	}
}

// UpdateCategoryRequest defines the data allowed for updating a category.
// Kind is immutable and deliberately absent.
type UpdateCategoryRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
	Icon  *string `json:"icon"`
}

// ToParams converts the request to service-layer parameters.
func (r UpdateCategoryRequest) ToParams() portssvc.UpdateCategoryParams {
	return portssvc.UpdateCategoryParams{
		Name:  r.Name,
		Color: r.Color,
		Icon:  r.Icon,
	}
}

// ListCategoriesParams defines query parameters for listing categories.
type ListCategoriesParams struct {
	Kind *domain.CategoryKind `form:"kind" binding:"omitempty,oneof=income expense"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID    string              `json:"categoryID"`
	Name          string              `json:"name"`
	Kind          domain.CategoryKind `json:"kind"`
	Color         string              `json:"color"`
	Icon          string              `json:"icon"`
	IsDefault     bool                `json:"isDefault"`
	CreatedAt     time.Time           `json:"createdAt"`
	LastUpdatedAt time.Time           `json:"lastUpdatedAt"`
}

// ToCategoryResponse converts a domain.Category to CategoryResponse DTO
func ToCategoryResponse(cat *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID:    cat.CategoryID,
		Name:          cat.Name,
		Kind:          cat.Kind,
		Color:         cat.Color,
		Icon:          cat.Icon,
		IsDefault:     cat.IsDefault,
		CreatedAt:     cat.CreatedAt,
		LastUpdatedAt: cat.LastUpdatedAt,
	}
}

// ToListCategoryResponse converts a slice of domain.Category to response DTOs.
func ToListCategoryResponse(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i := range categories {
		res[i] = ToCategoryResponse(&categories[i])
	}
	return res
}
