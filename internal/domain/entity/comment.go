package entity

import (
	"time"
)

// Comment represents a comment document on a blog post. A nil ParentID
// means a top-level comment; otherwise the comment is a reply and the
// parent must live on the same post.
type Comment struct {
	ID        string     `bson:"_id,omitempty" json:"id"`
	PostID    string     `bson:"post_id" json:"post_id"`
	AuthorID  string     `bson:"author_id" json:"author_id"`
	Content   string     `bson:"content" json:"content"`
	ParentID  *string    `bson:"parent_comment_id,omitempty" json:"parent_comment_id,omitempty"`
	Likes     []string   `bson:"likes" json:"likes"`
	IsEdited  bool       `bson:"is_edited" json:"is_edited"`
	IsDeleted bool       `bson:"is_deleted" json:"is_deleted"`
	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// LikedBy reports whether userID already appears in the likes set.
func (c *Comment) LikedBy(userID string) bool {
	for _, id := range c.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// CommentThread is a top-level comment annotated with its direct replies.
// Nesting is a single level deep; replies of replies are listed flat under
// the top-level ancestor they were promoted to.
type CommentThread struct {
	Comment *Comment   `json:"comment"`
	Replies []*Comment `json:"replies,omitempty"`
}
