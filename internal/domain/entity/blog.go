package entity

import (
	"time"
)

// BlogStatus represents the lifecycle state of a blog post
type BlogStatus string

const (
	BlogStatusDraft     BlogStatus = "draft"
	BlogStatusScheduled BlogStatus = "scheduled"
	BlogStatusPublished BlogStatus = "published"
	BlogStatusArchived  BlogStatus = "archived"
)

// BlogVisibility controls who can see a blog post
type BlogVisibility string

const (
	BlogVisibilityPublic   BlogVisibility = "public"
	BlogVisibilityPrivate  BlogVisibility = "private"
	BlogVisibilityUnlisted BlogVisibility = "unlisted"
)

// BlogLike records a single user's like on a post. Uniqueness by UserID is
// enforced by the repository's guarded insert.
type BlogLike struct {
	UserID  string    `bson:"user_id" json:"user_id"`
	LikedAt time.Time `bson:"liked_at" json:"liked_at"`
}

// FeaturedImage is an optional header image for a post.
type FeaturedImage struct {
	URL     string `bson:"url" json:"url"`
	Alt     string `bson:"alt,omitempty" json:"alt,omitempty"`
	Caption string `bson:"caption,omitempty" json:"caption,omitempty"`
}

// Blog represents a blog post document
type Blog struct {
	ID            string         `bson:"_id,omitempty" json:"id"`
	Title         string         `bson:"title" json:"title"`
	Slug          string         `bson:"slug" json:"slug"`
	Content       string         `bson:"content" json:"content"`
	Excerpt       string         `bson:"excerpt,omitempty" json:"excerpt,omitempty"`
	AuthorID      string         `bson:"author_id" json:"author_id"`
	CategoryID    string         `bson:"category_id,omitempty" json:"category_id,omitempty"`
	Tags          []string       `bson:"tags,omitempty" json:"tags,omitempty"`
	FeaturedImage *FeaturedImage `bson:"featured_image,omitempty" json:"featured_image,omitempty"`
	Status        BlogStatus     `bson:"status" json:"status"`
	Visibility    BlogVisibility `bson:"visibility" json:"visibility"`
	ViewCount     int            `bson:"view_count" json:"view_count"`
	Likes         []BlogLike     `bson:"likes" json:"likes"`
	PublishedAt   *time.Time     `bson:"published_at,omitempty" json:"published_at,omitempty"`
	ScheduledFor  *time.Time     `bson:"scheduled_for,omitempty" json:"scheduled_for,omitempty"`
	CreatedAt     time.Time      `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time      `bson:"updated_at" json:"updated_at"`
}

// LikedBy reports whether userID already appears in the likes set.
func (b *Blog) LikedBy(userID string) bool {
	for _, l := range b.Likes {
		if l.UserID == userID {
			return true
		}
	}
	return false
}
