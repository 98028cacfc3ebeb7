package usecase

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bereketsol/Inkwell/internal/domain/apperr"
	"github.com/bereketsol/Inkwell/internal/domain/contract"
	"github.com/bereketsol/Inkwell/internal/domain/entity"
	usecasecontract "github.com/bereketsol/Inkwell/internal/usecase/contract"
)

const maxCommentLength = 1000

type commentUseCase struct {
	commentRepo contract.ICommentRepository
	blogRepo    contract.IBlogRepository
	userRepo    contract.IUserRepository
	uuidgen     contract.IUUIDGenerator
	now         func() time.Time
}

func NewCommentUseCase(
	commentRepo contract.ICommentRepository,
	blogRepo contract.IBlogRepository,
	userRepo contract.IUserRepository,
	uuidgen contract.IUUIDGenerator,
) usecasecontract.ICommentUseCase {
	return &commentUseCase{
		commentRepo: commentRepo,
		blogRepo:    blogRepo,
		userRepo:    userRepo,
		uuidgen:     uuidgen,
		now:         time.Now,
	}
}

// CreateComment creates a top-level comment or a reply. A reply's parent
// must exist, not be soft-deleted, and live on the same post.
func (uc *commentUseCase) CreateComment(ctx context.Context, postID, authorID, content string, parentCommentID *string) (*entity.Comment, error) {
	if _, err := uc.blogRepo.GetBlogByID(ctx, postID); err != nil {
		return nil, err
	}
	if _, err := uc.userRepo.GetUserByID(ctx, authorID); err != nil {
		return nil, err
	}

	content = strings.TrimSpace(content)
	if err := validateCommentContent(content); err != nil {
		return nil, err
	}

	if parentCommentID != nil && *parentCommentID != "" {
		parent, err := uc.commentRepo.GetByID(ctx, *parentCommentID)
		if err != nil {
			return nil, err
		}
		if parent.IsDeleted {
			return nil, apperr.New(apperr.NotFound, "parent comment not found")
		}
		if parent.PostID != postID {
			return nil, apperr.New(apperr.InvalidOperation, "parent comment belongs to a different post")
		}
	} else {
		parentCommentID = nil
	}

	comment := &entity.Comment{
		ID:        uc.uuidgen.NewUUID(),
		PostID:    postID,
		AuthorID:  authorID,
		Content:   content,
		ParentID:  parentCommentID,
		Likes:     []string{},
		IsEdited:  false,
		IsDeleted: false,
		CreatedAt: uc.now(),
	}
	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// GetComment retrieves a single comment by id, soft-deleted ones
// included; they stay addressable for referential integrity.
func (uc *commentUseCase) GetComment(ctx context.Context, commentID string) (*entity.Comment, error) {
	return uc.commentRepo.GetByID(ctx, commentID)
}

// UpdateComment replaces the content and marks the comment edited. A
// soft-deleted comment cannot be edited.
func (uc *commentUseCase) UpdateComment(ctx context.Context, commentID, callerID string, isElevated bool, content string) (*entity.Comment, error) {
	comment, err := uc.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.IsDeleted {
		return nil, apperr.New(apperr.NotFound, "comment not found")
	}
	if !isElevated && comment.AuthorID != callerID {
		return nil, apperr.New(apperr.Forbidden, "you can only edit your own comments")
	}

	content = strings.TrimSpace(content)
	if err := validateCommentContent(content); err != nil {
		return nil, err
	}

	now := uc.now()
	if err := uc.commentRepo.Update(ctx, commentID, map[string]interface{}{
		"content":    content,
		"is_edited":  true,
		"updated_at": now,
	}); err != nil {
		return nil, err
	}
	comment.Content = content
	comment.IsEdited = true
	comment.UpdatedAt = &now
	return comment, nil
}

// DeleteComment soft-deletes by default, keeping the record for
// referential integrity. The hard path removes the document; replies are
// left in place and the read path promotes them to top-level.
func (uc *commentUseCase) DeleteComment(ctx context.Context, commentID, callerID string, isElevated bool, soft bool) error {
	comment, err := uc.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if !isElevated && comment.AuthorID != callerID {
		return apperr.New(apperr.Forbidden, "you can only delete your own comments")
	}
	if soft {
		if comment.IsDeleted {
			return apperr.New(apperr.NotFound, "comment not found")
		}
		return uc.commentRepo.SoftDelete(ctx, commentID)
	}
	return uc.commentRepo.HardDelete(ctx, commentID)
}

// ListByPost returns the post's top-level comments, each annotated with
// its direct replies when includeReplies is set. Thread assembly happens
// here from a single query: a reply whose parent is missing or
// soft-deleted is promoted to top-level so orphans stay visible.
func (uc *commentUseCase) ListByPost(ctx context.Context, postID string, includeReplies bool) ([]*entity.CommentThread, error) {
	if _, err := uc.blogRepo.GetBlogByID(ctx, postID); err != nil {
		return nil, err
	}

	comments, err := uc.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	visible := make(map[string]*entity.Comment, len(comments))
	for _, c := range comments {
		visible[c.ID] = c
	}

	var threads []*entity.CommentThread
	byID := make(map[string]*entity.CommentThread)
	var replies []*entity.Comment

	for _, c := range comments {
		if c.ParentID == nil {
			t := &entity.CommentThread{Comment: c}
			threads = append(threads, t)
			byID[c.ID] = t
			continue
		}
		if _, ok := visible[*c.ParentID]; ok {
			replies = append(replies, c)
		} else {
			// Parent was hard-deleted or is soft-deleted: show the
			// reply as if it were top-level.
			t := &entity.CommentThread{Comment: c}
			threads = append(threads, t)
			byID[c.ID] = t
		}
	}

	if includeReplies {
		for _, reply := range replies {
			// Walk up to the nearest ancestor that heads a thread, so a
			// reply to a reply lists flat under the top-level comment.
			ancestor := *reply.ParentID
			for {
				if t, ok := byID[ancestor]; ok {
					t.Replies = append(t.Replies, reply)
					break
				}
				parent, ok := visible[ancestor]
				if !ok || parent.ParentID == nil {
					break
				}
				ancestor = *parent.ParentID
			}
		}
	}
	return threads, nil
}

// CountByPost returns the number of visible comments on a post.
func (uc *commentUseCase) CountByPost(ctx context.Context, postID string) (int64, error) {
	return uc.commentRepo.CountByPost(ctx, postID)
}

// LikeComment adds the user to the comment's likes set; liking twice is a
// no-op, not an error.
func (uc *commentUseCase) LikeComment(ctx context.Context, commentID, userID string) error {
	comment, err := uc.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.IsDeleted {
		return apperr.New(apperr.NotFound, "comment not found")
	}
	return uc.commentRepo.AddLike(ctx, commentID, userID)
}

// UnlikeComment removes the user from the likes set; idempotent.
func (uc *commentUseCase) UnlikeComment(ctx context.Context, commentID, userID string) error {
	comment, err := uc.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.IsDeleted {
		return apperr.New(apperr.NotFound, "comment not found")
	}
	return uc.commentRepo.RemoveLike(ctx, commentID, userID)
}

// CountLikes returns the cardinality of the comment's likes set.
func (uc *commentUseCase) CountLikes(ctx context.Context, commentID string) (int, error) {
	comment, err := uc.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return 0, err
	}
	return len(comment.Likes), nil
}

// validateCommentContent bounds length in characters, not bytes, so
// multibyte text is measured the way users count it.
func validateCommentContent(content string) error {
	if len(content) == 0 {
		return apperr.New(apperr.InvalidOperation, "comment content cannot be empty")
	}
	if utf8.RuneCountInString(content) > maxCommentLength {
		return apperr.New(apperr.InvalidOperation, "comment content too long (max 1000 characters)")
	}
	return nil
}
