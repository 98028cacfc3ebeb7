package usecasecontract

import (
	"context"

	"github.com/bereketsol/Inkwell/internal/domain/entity"
)

type ICategoryUseCase interface {
	CreateCategory(ctx context.Context, name, description, icon, color string, parentID *string) (*entity.Category, error)
	GetCategoryByID(ctx context.Context, categoryID string) (*entity.Category, error)
	ListCategories(ctx context.Context, onlyActive bool) ([]*entity.Category, error)
	UpdateCategory(ctx context.Context, categoryID string, updates map[string]interface{}) (*entity.Category, error)
	// DeleteCategory soft-deletes by default, deactivating direct
	// children; soft=false removes the document.
	DeleteCategory(ctx context.Context, categoryID string, soft bool) error

	IncrementPostCount(ctx context.Context, categoryID string) error
	DecrementPostCount(ctx context.Context, categoryID string) error
}
