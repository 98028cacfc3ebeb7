package usecasecontract

import (
	"context"
	"time"

	"github.com/bereketsol/Inkwell/internal/domain/contract"
	"github.com/bereketsol/Inkwell/internal/domain/entity"
)

// IBlogUseCase defines blog CRUD and the status state machine.
type IBlogUseCase interface {
	CreateBlog(ctx context.Context, title, content, excerpt, authorID, categoryID string, visibility entity.BlogVisibility, tags []string) (*entity.Blog, error)
	GetBlogs(ctx context.Context, opts *contract.BlogFilterOptions) ([]entity.Blog, int, int, int, error)
	GetBlogDetail(ctx context.Context, idOrSlug string, includeDrafts bool) (*entity.Blog, error)
	UpdateBlog(ctx context.Context, blogID, callerID string, isElevated bool, updates map[string]interface{}) (*entity.Blog, error)
	DeleteBlog(ctx context.Context, blogID, callerID string, isElevated bool) error

	// Lifecycle transitions
	Schedule(ctx context.Context, blogID string, publishDate time.Time) (*entity.Blog, error)
	Publish(ctx context.Context, blogID string) (*entity.Blog, error)
	Archive(ctx context.Context, blogID string) (*entity.Blog, error)

	// Engagement
	IncrementViewCount(ctx context.Context, blogID string) error
	Like(ctx context.Context, blogID, userID string) error
	Unlike(ctx context.Context, blogID, userID string) error
}
