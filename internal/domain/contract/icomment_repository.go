package contract

import (
	"context"

	"github.com/bereketsol/Inkwell/internal/domain/entity"
)

type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

type ICommentRepository interface {
	// Core CRUD operations. GetByID returns soft-deleted comments too;
	// callers decide whether a deleted comment is visible.
	Create(ctx context.Context, comment *entity.Comment) error
	GetByID(ctx context.Context, id string) (*entity.Comment, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) error
	// SoftDelete flips is_deleted; HardDelete removes the document.
	SoftDelete(ctx context.Context, id string) error
	HardDelete(ctx context.Context, id string) error

	// ListByPost returns every non-deleted comment on a post, oldest
	// first. Thread assembly happens in the usecase.
	ListByPost(ctx context.Context, postId string) ([]*entity.Comment, error)
	CountByPost(ctx context.Context, postId string) (int64, error)

	// Like system: single-document atomic set-add/set-remove on the
	// likes array of user ids.
	AddLike(ctx context.Context, commentID, userID string) error
	RemoveLike(ctx context.Context, commentID, userID string) error
}
