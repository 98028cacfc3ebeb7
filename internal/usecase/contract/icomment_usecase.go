package usecasecontract

import (
	"context"

	"github.com/bereketsol/Inkwell/internal/domain/entity"
)

type ICommentUseCase interface {
	// Core operations
	CreateComment(ctx context.Context, postID, authorID, content string, parentCommentID *string) (*entity.Comment, error)
	GetComment(ctx context.Context, commentID string) (*entity.Comment, error)
	UpdateComment(ctx context.Context, commentID, callerID string, isElevated bool, content string) (*entity.Comment, error)
	// DeleteComment soft-deletes by default; soft=false removes the
	// document and its replies are promoted to top-level on read.
	DeleteComment(ctx context.Context, commentID, callerID string, isElevated bool, soft bool) error

	// Listing
	ListByPost(ctx context.Context, postID string, includeReplies bool) ([]*entity.CommentThread, error)
	CountByPost(ctx context.Context, postID string) (int64, error)

	// Engagement: idempotent set-membership toggles
	LikeComment(ctx context.Context, commentID, userID string) error
	UnlikeComment(ctx context.Context, commentID, userID string) error
	CountLikes(ctx context.Context, commentID string) (int, error)
}
