package dto

import (
	"time"

	"github.com/bereketsol/Inkwell/internal/domain/entity"
)

// Request DTOs for Comment Handlers

// CreateCommentRequest defines the payload for posting a comment. A
// non-nil ParentID makes the comment a reply.
type CreateCommentRequest struct {
	Content  string  `json:"content" binding:"required"`
	ParentID *string `json:"parent_comment_id"`
}

// UpdateCommentRequest defines the payload for editing a comment.
type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// Response DTOs

// CommentResponse is the public shape of a comment.
type CommentResponse struct {
	ID        string     `json:"id"`
	PostID    string     `json:"post_id"`
	AuthorID  string     `json:"author_id"`
	Content   string     `json:"content"`
	ParentID  *string    `json:"parent_comment_id,omitempty"`
	LikeCount int        `json:"like_count"`
	IsEdited  bool       `json:"is_edited"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// CommentThreadResponse is a top-level comment with its direct replies.
type CommentThreadResponse struct {
	Comment CommentResponse   `json:"comment"`
	Replies []CommentResponse `json:"replies,omitempty"`
}

// ToCommentResponse converts an entity.Comment to a CommentResponse DTO.
func ToCommentResponse(c entity.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		PostID:    c.PostID,
		AuthorID:  c.AuthorID,
		Content:   c.Content,
		ParentID:  c.ParentID,
		LikeCount: len(c.Likes),
		IsEdited:  c.IsEdited,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToCommentThreadResponses maps assembled threads to their response shape.
func ToCommentThreadResponses(threads []*entity.CommentThread) []CommentThreadResponse {
	out := make([]CommentThreadResponse, 0, len(threads))
	for _, t := range threads {
		tr := CommentThreadResponse{Comment: ToCommentResponse(*t.Comment)}
		for _, r := range t.Replies {
			tr.Replies = append(tr.Replies, ToCommentResponse(*r))
		}
		out = append(out, tr)
	}
	return out
}
