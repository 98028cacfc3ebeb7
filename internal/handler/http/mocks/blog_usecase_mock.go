package mocks

import (
	"context"
	"time"

	"github.com/bereketsol/Inkwell/internal/domain/apperr"
	"github.com/bereketsol/Inkwell/internal/domain/contract"
	"github.com/bereketsol/Inkwell/internal/domain/entity"
	usecasecontract "github.com/bereketsol/Inkwell/internal/usecase/contract"
)

// MockBlogUsecase is a mock implementation of the IBlogUseCase interface
type MockBlogUsecase struct {
	ShouldFailCreate   bool
	ShouldFailGet      bool
	ShouldFailUpdate   bool
	ShouldFailDelete   bool
	ShouldFailSchedule bool
	ShouldFailPublish  bool
	ShouldFailArchive  bool
	ShouldFailLike     bool

	// UpdateForbidden makes UpdateBlog and DeleteBlog return a Forbidden
	// error, simulating an ownership check failure.
	UpdateForbidden bool

	// LastFilter records the options GetBlogs was last called with.
	LastFilter *contract.BlogFilterOptions

	MockBlog entity.Blog
}

var _ usecasecontract.IBlogUseCase = (*MockBlogUsecase)(nil)

func NewMockBlogUsecase() *MockBlogUsecase {
	return &MockBlogUsecase{
		MockBlog: entity.Blog{
			ID:         "mock-blog-id",
			Title:      "A Test Post",
			Slug:       "a-test-post",
			Content:    "content",
			AuthorID:   "mock-user-id",
			Status:     entity.BlogStatusDraft,
			Visibility: entity.BlogVisibilityPublic,
		},
	}
}

func (m *MockBlogUsecase) CreateBlog(ctx context.Context, title, content, excerpt, authorID, categoryID string, visibility entity.BlogVisibility, tags []string) (*entity.Blog, error) {
	if m.ShouldFailCreate {
		return nil, apperr.New(apperr.NotFound, "category not found")
	}
	return &m.MockBlog, nil
}

func (m *MockBlogUsecase) GetBlogs(ctx context.Context, opts *contract.BlogFilterOptions) ([]entity.Blog, int, int, int, error) {
	m.LastFilter = opts
	if m.ShouldFailGet {
		return nil, 0, 0, 0, apperr.New(apperr.Internal, "query failed")
	}
	return []entity.Blog{m.MockBlog}, 1, 1, 1, nil
}

func (m *MockBlogUsecase) GetBlogDetail(ctx context.Context, idOrSlug string, includeDrafts bool) (*entity.Blog, error) {
	if m.ShouldFailGet {
		return nil, apperr.New(apperr.NotFound, "blog not found")
	}
	return &m.MockBlog, nil
}

func (m *MockBlogUsecase) UpdateBlog(ctx context.Context, blogID, callerID string, isElevated bool, updates map[string]interface{}) (*entity.Blog, error) {
	if m.UpdateForbidden {
		return nil, apperr.New(apperr.Forbidden, "you may only edit your own posts")
	}
	if m.ShouldFailUpdate {
		return nil, apperr.New(apperr.NotFound, "blog not found")
	}
	return &m.MockBlog, nil
}

func (m *MockBlogUsecase) DeleteBlog(ctx context.Context, blogID, callerID string, isElevated bool) error {
	if m.UpdateForbidden {
		return apperr.New(apperr.Forbidden, "you may only delete your own posts")
	}
	if m.ShouldFailDelete {
		return apperr.New(apperr.NotFound, "blog not found")
	}
	return nil
}

func (m *MockBlogUsecase) Schedule(ctx context.Context, blogID string, publishDate time.Time) (*entity.Blog, error) {
	if m.ShouldFailSchedule {
		return nil, apperr.New(apperr.InvalidOperation, "publish date must be in the future")
	}
	return &m.MockBlog, nil
}

func (m *MockBlogUsecase) Publish(ctx context.Context, blogID string) (*entity.Blog, error) {
	if m.ShouldFailPublish {
		return nil, apperr.New(apperr.InvalidOperation, "blog is already published")
	}
	b := m.MockBlog
	b.Status = entity.BlogStatusPublished
	return &b, nil
}

func (m *MockBlogUsecase) Archive(ctx context.Context, blogID string) (*entity.Blog, error) {
	if m.ShouldFailArchive {
		return nil, apperr.New(apperr.NotFound, "blog not found")
	}
	b := m.MockBlog
	b.Status = entity.BlogStatusArchived
	return &b, nil
}

func (m *MockBlogUsecase) IncrementViewCount(ctx context.Context, blogID string) error {
	if m.ShouldFailGet {
		return apperr.New(apperr.NotFound, "blog not found")
	}
	return nil
}

func (m *MockBlogUsecase) Like(ctx context.Context, blogID, userID string) error {
	if m.ShouldFailLike {
		return apperr.New(apperr.NotFound, "blog not found")
	}
	return nil
}

func (m *MockBlogUsecase) Unlike(ctx context.Context, blogID, userID string) error {
	if m.ShouldFailLike {
		return apperr.New(apperr.NotFound, "blog not found")
	}
	return nil
}
