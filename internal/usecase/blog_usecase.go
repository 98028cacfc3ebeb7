package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bereketsol/Inkwell/internal/domain/apperr"
	"github.com/bereketsol/Inkwell/internal/domain/contract"
	"github.com/bereketsol/Inkwell/internal/domain/entity"
	"github.com/bereketsol/Inkwell/internal/infrastructure/metrics"
	usecasecontract "github.com/bereketsol/Inkwell/internal/usecase/contract"
)

// BlogUseCaseImpl implements the IBlogUseCase interface
type BlogUseCaseImpl struct {
	blogRepo     contract.IBlogRepository
	categoryRepo contract.ICategoryRepository
	uuidgen      contract.IUUIDGenerator
	logger       usecasecontract.IAppLogger
	blogCache    contract.IBlogCache
	now          func() time.Time
}

// NewBlogUseCase creates a new instance of BlogUseCaseImpl
func NewBlogUseCase(blogRepo contract.IBlogRepository, categoryRepo contract.ICategoryRepository, uuidgenerator contract.IUUIDGenerator, logger usecasecontract.IAppLogger) *BlogUseCaseImpl {
	return &BlogUseCaseImpl{
		blogRepo:     blogRepo,
		categoryRepo: categoryRepo,
		uuidgen:      uuidgenerator,
		logger:       logger,
		now:          time.Now,
	}
}

// check if BlogUseCaseImpl implements the IBlogUseCase
var _ usecasecontract.IBlogUseCase = (*BlogUseCaseImpl)(nil)

// SetBlogCache wires the optional Redis cache after construction.
func (uc *BlogUseCaseImpl) SetBlogCache(cache contract.IBlogCache) {
	uc.blogCache = cache
}

// buildBlogsListCacheKey builds a stable key for list endpoint caching
func buildBlogsListCacheKey(opts *contract.BlogFilterOptions) string {
	status := ""
	if opts.Status != nil {
		status = string(*opts.Status)
	}
	author := ""
	if opts.AuthorID != nil {
		author = *opts.AuthorID
	}
	category := ""
	if opts.CategoryID != nil {
		category = *opts.CategoryID
	}
	from := ""
	if opts.DateFrom != nil {
		from = strconv.FormatInt(opts.DateFrom.Unix(), 10)
	}
	to := ""
	if opts.DateTo != nil {
		to = strconv.FormatInt(opts.DateTo.Unix(), 10)
	}
	return fmt.Sprintf("blogs:list:p=%d:s=%d:sb=%s:so=%s:st=%s:a=%s:c=%s:df=%s:dt=%s",
		opts.Page, opts.PageSize, opts.SortBy, opts.SortOrder, status, author, category, from, to)
}

// CreateBlog creates a new blog post in draft status.
func (uc *BlogUseCaseImpl) CreateBlog(ctx context.Context, title, content, excerpt, authorID, categoryID string, visibility entity.BlogVisibility, tags []string) (*entity.Blog, error) {
	if strings.TrimSpace(title) == "" {
		return nil, apperr.New(apperr.InvalidOperation, "title is required")
	}
	if strings.TrimSpace(content) == "" {
		return nil, apperr.New(apperr.InvalidOperation, "content is required")
	}
	if authorID == "" {
		return nil, apperr.New(apperr.InvalidOperation, "author ID is required")
	}
	if visibility == "" {
		visibility = entity.BlogVisibilityPublic
	}

	if categoryID != "" {
		if _, err := uc.categoryRepo.GetByID(ctx, categoryID); err != nil {
			return nil, err
		}
	}

	slug := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(title)), " ", "-")
	lowered := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			lowered = append(lowered, t)
		}
	}

	blog := &entity.Blog{
		ID:         uc.uuidgen.NewUUID(),
		Title:      strings.TrimSpace(title),
		Content:    content,
		Excerpt:    excerpt,
		AuthorID:   authorID,
		CategoryID: categoryID,
		// A UUID is always appended to ensure the final slug is unique
		Slug:       slug + "-" + uc.uuidgen.NewUUID(),
		Status:     entity.BlogStatusDraft,
		Visibility: visibility,
		Tags:       lowered,
		Likes:      []entity.BlogLike{},
		ViewCount:  0,
		CreatedAt:  uc.now(),
		UpdatedAt:  uc.now(),
	}

	if err := uc.blogRepo.CreateBlog(ctx, blog); err != nil {
		uc.logger.Errorf("failed to create blog: %v", err)
		return nil, err
	}

	if categoryID != "" {
		if err := uc.categoryRepo.IncrementPostCount(ctx, categoryID); err != nil {
			uc.logger.Warningf("failed to increment post count for category %s: %v", categoryID, err)
		}
	}

	if uc.blogCache != nil {
		_ = uc.blogCache.InvalidateBlogLists(ctx)
	}
	return blog, nil
}

// GetBlogs retrieves a paginated list of blogs.
func (uc *BlogUseCaseImpl) GetBlogs(ctx context.Context, opts *contract.BlogFilterOptions) ([]entity.Blog, int, int, int, error) {
	if opts == nil {
		opts = &contract.BlogFilterOptions{}
	}
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.PageSize < 1 {
		opts.PageSize = 10
	}

	if uc.blogCache != nil {
		key := buildBlogsListCacheKey(opts)
		cached, found, err := uc.blogCache.GetBlogsPage(ctx, key)
		if err == nil && found && cached != nil {
			metrics.IncListHit()
			totalPages := (cached.Total + opts.PageSize - 1) / opts.PageSize
			return cached.Blogs, cached.Total, opts.Page, totalPages, nil
		}
		if err == nil && !found {
			metrics.IncListMiss()
		} else if err != nil {
			uc.logger.Warningf("cache error: blogs list key=%s err=%v", key, err)
		}
	}

	blogs, totalCount, err := uc.blogRepo.GetBlogs(ctx, opts)
	if err != nil {
		uc.logger.Errorf("failed to get blogs: %v", err)
		return nil, 0, 0, 0, err
	}

	blogValues := make([]entity.Blog, 0, len(blogs))
	for _, blog := range blogs {
		blogValues = append(blogValues, *blog)
	}

	totalPages := int(totalCount) / opts.PageSize
	if int(totalCount)%opts.PageSize != 0 {
		totalPages++
	}

	if uc.blogCache != nil {
		key := buildBlogsListCacheKey(opts)
		_ = uc.blogCache.SetBlogsPage(ctx, key, &contract.CachedBlogsPage{Blogs: blogValues, Total: int(totalCount)})
	}

	return blogValues, int(totalCount), opts.Page, totalPages, nil
}

// looksLikeUUID reports whether s has the shape of a generated id rather
// than a slug. Generated slugs always carry a title prefix, so length
// alone distinguishes them.
func looksLikeUUID(s string) bool {
	return len(s) == 36 && strings.Count(s, "-") == 4
}

// GetBlogDetail retrieves a blog by id or slug. Drafts are hidden unless
// includeDrafts is set (author/editor paths).
func (uc *BlogUseCaseImpl) GetBlogDetail(ctx context.Context, idOrSlug string, includeDrafts bool) (*entity.Blog, error) {
	if idOrSlug == "" {
		return nil, apperr.New(apperr.InvalidOperation, "blog id or slug is required")
	}

	byID := looksLikeUUID(idOrSlug)

	if uc.blogCache != nil && !byID {
		cached, found, err := uc.blogCache.GetBlogBySlug(ctx, idOrSlug)
		if err == nil && found && cached != nil {
			metrics.IncDetailHit()
			if includeDrafts || cached.Status != entity.BlogStatusDraft {
				return cached, nil
			}
		} else if err == nil && !found {
			metrics.IncDetailMiss()
		} else if err != nil {
			uc.logger.Warningf("cache error: blog detail slug=%s err=%v", idOrSlug, err)
		}
	}

	var blog *entity.Blog
	var err error
	if byID {
		blog, err = uc.blogRepo.GetBlogByID(ctx, idOrSlug)
	} else {
		blog, err = uc.blogRepo.GetBlogBySlug(ctx, idOrSlug)
	}
	if err != nil {
		return nil, err
	}

	if !includeDrafts && blog.Status == entity.BlogStatusDraft {
		return nil, apperr.New(apperr.Forbidden, "blog post is not published")
	}

	if uc.blogCache != nil && !byID {
		_ = uc.blogCache.SetBlogBySlug(ctx, idOrSlug, blog)
	}
	return blog, nil
}

// allowed fields for UpdateBlog
var allowedBlogFields = map[string]bool{
	"title":          true,
	"content":        true,
	"excerpt":        true,
	"category_id":    true,
	"tags":           true,
	"visibility":     true,
	"featured_image": true,
}

// UpdateBlog applies a partial update. Only the author may update unless
// the caller holds the blog:edit permission (isElevated).
func (uc *BlogUseCaseImpl) UpdateBlog(ctx context.Context, blogID, callerID string, isElevated bool, updates map[string]interface{}) (*entity.Blog, error) {
	blog, err := uc.blogRepo.GetBlogByID(ctx, blogID)
	if err != nil {
		return nil, err
	}
	if !isElevated && blog.AuthorID != callerID {
		return nil, apperr.New(apperr.Forbidden, "only the author can update this blog")
	}

	filtered := make(map[string]interface{}, len(updates))
	for key, value := range updates {
		if allowedBlogFields[key] {
			filtered[key] = value
		}
	}
	if len(filtered) == 0 {
		return nil, apperr.New(apperr.InvalidOperation, "no updatable fields provided")
	}

	oldSlug := blog.Slug
	oldCategory := blog.CategoryID
	if title, ok := filtered["title"].(string); ok && strings.TrimSpace(title) != "" {
		newSlug := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(title)), " ", "-")
		filtered["slug"] = newSlug + "-" + uc.uuidgen.NewUUID()
	}
	if newCategory, ok := filtered["category_id"].(string); ok && newCategory != oldCategory {
		if newCategory != "" {
			if _, err := uc.categoryRepo.GetByID(ctx, newCategory); err != nil {
				return nil, err
			}
		}
	}
	filtered["updated_at"] = uc.now()

	if err := uc.blogRepo.UpdateBlog(ctx, blogID, filtered); err != nil {
		uc.logger.Errorf("failed to update blog: %v", err)
		return nil, err
	}

	// Keep category post counts aligned with the new assignment.
	if newCategory, ok := filtered["category_id"].(string); ok && newCategory != oldCategory {
		if oldCategory != "" {
			if err := uc.categoryRepo.DecrementPostCount(ctx, oldCategory); err != nil {
				uc.logger.Warningf("failed to decrement post count for category %s: %v", oldCategory, err)
			}
		}
		if newCategory != "" {
			if err := uc.categoryRepo.IncrementPostCount(ctx, newCategory); err != nil {
				uc.logger.Warningf("failed to increment post count for category %s: %v", newCategory, err)
			}
		}
	}

	updated, err := uc.blogRepo.GetBlogByID(ctx, blogID)
	if err != nil {
		return nil, err
	}
	uc.invalidateCaches(ctx, oldSlug, updated.Slug)
	return updated, nil
}

// DeleteBlog removes a blog post. Only the author may delete unless the
// caller holds the blog:delete permission.
func (uc *BlogUseCaseImpl) DeleteBlog(ctx context.Context, blogID, callerID string, isElevated bool) error {
	blog, err := uc.blogRepo.GetBlogByID(ctx, blogID)
	if err != nil {
		return err
	}
	if !isElevated && blog.AuthorID != callerID {
		return apperr.New(apperr.Forbidden, "only the author or an admin can delete this blog")
	}

	if err := uc.blogRepo.DeleteBlog(ctx, blogID); err != nil {
		uc.logger.Errorf("failed to delete blog: %v", err)
		return err
	}
	if blog.CategoryID != "" {
		if err := uc.categoryRepo.DecrementPostCount(ctx, blog.CategoryID); err != nil {
			uc.logger.Warningf("failed to decrement post count for category %s: %v", blog.CategoryID, err)
		}
	}
	uc.invalidateCaches(ctx, blog.Slug, "")
	return nil
}

// Schedule records a future publish date. The post's status goes back to
// draft rather than scheduled: publication is deferred to an external
// trigger, not an internal timer, and draft keeps the post hidden until
// then. The status choice lives in the repository's Schedule method so
// the policy is a one-line change.
func (uc *BlogUseCaseImpl) Schedule(ctx context.Context, blogID string, publishDate time.Time) (*entity.Blog, error) {
	blog, err := uc.blogRepo.GetBlogByID(ctx, blogID)
	if err != nil {
		return nil, err
	}
	if !publishDate.After(uc.now()) {
		return nil, apperr.New(apperr.InvalidOperation, "publish date must be in the future")
	}
	if err := uc.blogRepo.Schedule(ctx, blogID, publishDate); err != nil {
		uc.logger.Errorf("failed to schedule blog %s: %v", blogID, err)
		return nil, err
	}
	uc.invalidateCaches(ctx, blog.Slug, "")
	return uc.blogRepo.GetBlogByID(ctx, blogID)
}

// Publish moves a post to published, stamping publishedAt and clearing
// any pending schedule. Publishing an already-published post is rejected;
// there is no un-publish, only Archive.
func (uc *BlogUseCaseImpl) Publish(ctx context.Context, blogID string) (*entity.Blog, error) {
	blog, err := uc.blogRepo.GetBlogByID(ctx, blogID)
	if err != nil {
		return nil, err
	}
	if blog.Status == entity.BlogStatusPublished {
		return nil, apperr.New(apperr.InvalidOperation, "blog post is already published")
	}
	if err := uc.blogRepo.Publish(ctx, blogID, uc.now()); err != nil {
		uc.logger.Errorf("failed to publish blog %s: %v", blogID, err)
		return nil, err
	}
	uc.invalidateCaches(ctx, blog.Slug, "")
	return uc.blogRepo.GetBlogByID(ctx, blogID)
}

// Archive moves a post to archived from any state.
func (uc *BlogUseCaseImpl) Archive(ctx context.Context, blogID string) (*entity.Blog, error) {
	blog, err := uc.blogRepo.GetBlogByID(ctx, blogID)
	if err != nil {
		return nil, err
	}
	if err := uc.blogRepo.Archive(ctx, blogID); err != nil {
		uc.logger.Errorf("failed to archive blog %s: %v", blogID, err)
		return nil, err
	}
	uc.invalidateCaches(ctx, blog.Slug, "")
	return uc.blogRepo.GetBlogByID(ctx, blogID)
}

// IncrementViewCount bumps the monotonic view counter.
func (uc *BlogUseCaseImpl) IncrementViewCount(ctx context.Context, blogID string) error {
	if _, err := uc.blogRepo.GetBlogByID(ctx, blogID); err != nil {
		return err
	}
	return uc.blogRepo.IncrementViewCount(ctx, blogID)
}

// Like adds the user to the post's likes set. Liking twice is a no-op;
// the repository's guarded insert enforces uniqueness by user id.
func (uc *BlogUseCaseImpl) Like(ctx context.Context, blogID, userID string) error {
	if _, err := uc.blogRepo.GetBlogByID(ctx, blogID); err != nil {
		return err
	}
	return uc.blogRepo.AddLike(ctx, blogID, userID, uc.now())
}

// Unlike removes the user from the post's likes set; idempotent.
func (uc *BlogUseCaseImpl) Unlike(ctx context.Context, blogID, userID string) error {
	if _, err := uc.blogRepo.GetBlogByID(ctx, blogID); err != nil {
		return err
	}
	return uc.blogRepo.RemoveLike(ctx, blogID, userID)
}

func (uc *BlogUseCaseImpl) invalidateCaches(ctx context.Context, slugs ...string) {
	if uc.blogCache == nil {
		return
	}
	_ = uc.blogCache.InvalidateBlogLists(ctx)
	for _, slug := range slugs {
		if slug != "" {
			_ = uc.blogCache.InvalidateBlogBySlug(ctx, slug)
		}
	}
}
