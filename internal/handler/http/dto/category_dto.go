package dto

import (
	"time"

	"github.com/bereketsol/Inkwell/internal/domain/entity"
)

// Request DTOs for Category Handlers

// CreateCategoryRequest defines the payload for creating a category.
type CreateCategoryRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Color       string  `json:"color"`
	ParentID    *string `json:"parent_id"`
}

// UpdateCategoryRequest defines the mutable category fields. Nil fields
// are left unchanged.
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	Color       *string `json:"color"`
	ParentID    *string `json:"parent_id"`
}

// CategoryResponse is the public shape of a category.
type CategoryResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description string     `json:"description,omitempty"`
	Icon        string     `json:"icon,omitempty"`
	Color       string     `json:"color"`
	ParentID    *string    `json:"parent_id,omitempty"`
	PostCount   int        `json:"post_count"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// ToCategoryResponse converts an entity.Category to its response shape.
func ToCategoryResponse(cat entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:          cat.ID,
		Name:        cat.Name,
		Slug:        cat.Slug,
		Description: cat.Description,
		Icon:        cat.Icon,
		Color:       cat.Color,
		ParentID:    cat.ParentID,
		PostCount:   cat.PostCount,
		IsActive:    cat.IsActive,
		CreatedAt:   cat.CreatedAt,
		UpdatedAt:   cat.UpdatedAt,
	}
}

// ToCategoryResponses maps a category listing.
func ToCategoryResponses(cats []*entity.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, ToCategoryResponse(*c))
	}
	return out
}
