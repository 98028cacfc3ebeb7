package contract

import (
	"context"
	"time"

	"github.com/bereketsol/Inkwell/internal/domain/entity"
)

// IBlogRepository provides methods for managing blog post documents.
type IBlogRepository interface {
	CreateBlog(ctx context.Context, blog *entity.Blog) error
	GetBlogByID(ctx context.Context, blogID string) (*entity.Blog, error)
	GetBlogBySlug(ctx context.Context, slug string) (*entity.Blog, error)
	GetBlogs(ctx context.Context, filterOptions *BlogFilterOptions) ([]*entity.Blog, int64, error)
	UpdateBlog(ctx context.Context, blogID string, updates map[string]interface{}) error
	DeleteBlog(ctx context.Context, blogID string) error

	// Lifecycle transitions. Schedule deliberately sets status back to
	// draft rather than scheduled; publication is triggered externally.
	Schedule(ctx context.Context, blogID string, publishDate time.Time) error
	Publish(ctx context.Context, blogID string, publishedAt time.Time) error
	Archive(ctx context.Context, blogID string) error

	// IncrementViewCount is a single-document atomic counter increment.
	IncrementViewCount(ctx context.Context, blogID string) error

	// AddLike inserts {userID, likedAt} into the likes set only when the
	// user is not already present; RemoveLike pulls the entry. Both are
	// idempotent at the document level.
	AddLike(ctx context.Context, blogID, userID string, likedAt time.Time) error
	RemoveLike(ctx context.Context, blogID, userID string) error
}

// BlogFilterOptions encapsulates filtering, pagination, and sorting
// parameters for blog retrieval.
type BlogFilterOptions struct {
	Page       int
	PageSize   int
	SortBy     string // e.g. "created_at", "view_count"
	SortOrder  string // "asc" or "desc"
	Status     *entity.BlogStatus
	Visibility *entity.BlogVisibility
	AuthorID   *string
	CategoryID *string
	DateFrom   *time.Time
	DateTo     *time.Time
}
