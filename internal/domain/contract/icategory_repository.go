package contract

import (
	"context"

	"github.com/bereketsol/Inkwell/internal/domain/entity"
)

type ICategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Category, error)
	List(ctx context.Context, onlyActive bool) ([]*entity.Category, error)
	ListChildren(ctx context.Context, parentID string) ([]*entity.Category, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) error
	// SoftDelete flips is_active; HardDelete removes the document.
	SoftDelete(ctx context.Context, id string) error
	HardDelete(ctx context.Context, id string) error

	// Atomic counter updates keeping post_count in sync with blog
	// category assignment. DecrementPostCount never drops below zero.
	IncrementPostCount(ctx context.Context, id string) error
	DecrementPostCount(ctx context.Context, id string) error
}
