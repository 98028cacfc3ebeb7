package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/bereketsol/Inkwell/internal/domain/apperr"
	"github.com/bereketsol/Inkwell/internal/domain/contract"
	"github.com/bereketsol/Inkwell/internal/domain/entity"
	usecasecontract "github.com/bereketsol/Inkwell/internal/usecase/contract"
)

type categoryUseCase struct {
	categoryRepo contract.ICategoryRepository
	uuidgen      contract.IUUIDGenerator
	logger       usecasecontract.IAppLogger
}

func NewCategoryUseCase(categoryRepo contract.ICategoryRepository, uuidgen contract.IUUIDGenerator, logger usecasecontract.IAppLogger) usecasecontract.ICategoryUseCase {
	return &categoryUseCase{
		categoryRepo: categoryRepo,
		uuidgen:      uuidgen,
		logger:       logger,
	}
}

// slugify turns a category name into a URL-friendly slug.
func slugify(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('-')
		}
	}
	return strings.Trim(b.String(), "-")
}

// CreateCategory creates a category. A parent, when given, must exist.
func (uc *categoryUseCase) CreateCategory(ctx context.Context, name, description, icon, color string, parentID *string) (*entity.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperr.New(apperr.InvalidOperation, "category name is required")
	}
	if color == "" {
		color = entity.DefaultCategoryColor
	}

	if parentID != nil && *parentID != "" {
		if _, err := uc.categoryRepo.GetByID(ctx, *parentID); err != nil {
			return nil, err
		}
	} else {
		parentID = nil
	}

	slug := slugify(name)
	if existing, err := uc.categoryRepo.GetBySlug(ctx, slug); err == nil && existing != nil {
		return nil, apperr.New(apperr.Conflict, "category with this name already exists")
	} else if err != nil && !apperr.IsKind(err, apperr.NotFound) {
		return nil, err
	}

	category := &entity.Category{
		ID:          uc.uuidgen.NewUUID(),
		Name:        strings.TrimSpace(name),
		Slug:        slug,
		Description: description,
		Icon:        icon,
		Color:       color,
		ParentID:    parentID,
		PostCount:   0,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}
	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		uc.logger.Errorf("failed to create category: %v", err)
		return nil, err
	}
	return category, nil
}

func (uc *categoryUseCase) GetCategoryByID(ctx context.Context, categoryID string) (*entity.Category, error) {
	return uc.categoryRepo.GetByID(ctx, categoryID)
}

func (uc *categoryUseCase) ListCategories(ctx context.Context, onlyActive bool) ([]*entity.Category, error) {
	return uc.categoryRepo.List(ctx, onlyActive)
}

// allowed fields for UpdateCategory
var allowedCategoryFields = map[string]bool{
	"name":        true,
	"description": true,
	"icon":        true,
	"color":       true,
	"parent_id":   true,
	"is_active":   true,
}

// UpdateCategory applies a partial update. A category can never be its
// own parent; deeper cycles are not checked.
func (uc *categoryUseCase) UpdateCategory(ctx context.Context, categoryID string, updates map[string]interface{}) (*entity.Category, error) {
	if _, err := uc.categoryRepo.GetByID(ctx, categoryID); err != nil {
		return nil, err
	}

	filtered := make(map[string]interface{}, len(updates))
	for key, value := range updates {
		if allowedCategoryFields[key] {
			filtered[key] = value
		}
	}
	if len(filtered) == 0 {
		return nil, apperr.New(apperr.InvalidOperation, "no updatable fields provided")
	}

	if parentID, ok := filtered["parent_id"].(string); ok && parentID != "" {
		if parentID == categoryID {
			return nil, apperr.New(apperr.InvalidOperation, "a category cannot be its own parent")
		}
		if _, err := uc.categoryRepo.GetByID(ctx, parentID); err != nil {
			return nil, err
		}
	}

	// Name changes regenerate the slug.
	if name, ok := filtered["name"].(string); ok && strings.TrimSpace(name) != "" {
		filtered["slug"] = slugify(name)
	}
	filtered["updated_at"] = time.Now()

	if err := uc.categoryRepo.Update(ctx, categoryID, filtered); err != nil {
		return nil, err
	}
	return uc.categoryRepo.GetByID(ctx, categoryID)
}

// DeleteCategory soft-deletes by default, deactivating direct children so
// they do not dangle under an inactive parent. The hard path removes the
// document on explicit request.
func (uc *categoryUseCase) DeleteCategory(ctx context.Context, categoryID string, soft bool) error {
	if _, err := uc.categoryRepo.GetByID(ctx, categoryID); err != nil {
		return err
	}
	if soft {
		children, err := uc.categoryRepo.ListChildren(ctx, categoryID)
		if err != nil {
			return err
		}
		for _, child := range children {
			if err := uc.categoryRepo.Update(ctx, child.ID, map[string]interface{}{"is_active": false}); err != nil {
				uc.logger.Warningf("failed to deactivate child category %s: %v", child.ID, err)
			}
		}
		return uc.categoryRepo.SoftDelete(ctx, categoryID)
	}
	return uc.categoryRepo.HardDelete(ctx, categoryID)
}

func (uc *categoryUseCase) IncrementPostCount(ctx context.Context, categoryID string) error {
	if _, err := uc.categoryRepo.GetByID(ctx, categoryID); err != nil {
		return err
	}
	return uc.categoryRepo.IncrementPostCount(ctx, categoryID)
}

func (uc *categoryUseCase) DecrementPostCount(ctx context.Context, categoryID string) error {
	if _, err := uc.categoryRepo.GetByID(ctx, categoryID); err != nil {
		return err
	}
	return uc.categoryRepo.DecrementPostCount(ctx, categoryID)
}
