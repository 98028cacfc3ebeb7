package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bereketsol/Inkwell/internal/domain/contract"
	"github.com/bereketsol/Inkwell/internal/domain/entity"
	"github.com/bereketsol/Inkwell/internal/handler/http/dto"
	"github.com/bereketsol/Inkwell/internal/handler/http/middleware"
	usecasecontract "github.com/bereketsol/Inkwell/internal/usecase/contract"
)

type BlogHandler struct {
	blogUC usecasecontract.IBlogUseCase
}

func NewBlogHandler(blogUC usecasecontract.IBlogUseCase) *BlogHandler {
	return &BlogHandler{
		blogUC: blogUC,
	}
}

// CreateBlogHandler creates a new draft post owned by the caller
func (h *BlogHandler) CreateBlogHandler(c *gin.Context) {
	var req dto.CreateBlogRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	authorID := c.GetString(middleware.CtxUserID)
	visibility := entity.BlogVisibilityPublic
	if req.Visibility != "" {
		visibility = entity.BlogVisibility(req.Visibility)
	}

	blog, err := h.blogUC.CreateBlog(c.Request.Context(), req.Title, req.Content, req.Excerpt, authorID, req.CategoryID, visibility, req.Tags)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToBlogResponse(*blog))
}

// GetBlogsHandler lists published posts with filtering and pagination
func (h *BlogHandler) GetBlogsHandler(c *gin.Context) {
	opts := parseFilterOptions(c)
	blogs, total, page, totalPages, err := h.blogUC.GetBlogs(c.Request.Context(), opts)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToPaginatedBlogResponse(blogs, total, page, totalPages))
}

// GetBlogDetailHandler fetches a single post by ID or slug. Drafts and
// scheduled posts are only visible to elevated callers.
func (h *BlogHandler) GetBlogDetailHandler(c *gin.Context) {
	includeDrafts := isElevated(c)
	blog, err := h.blogUC.GetBlogDetail(c.Request.Context(), c.Param("blogID"), includeDrafts)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToBlogResponse(*blog))
}

// UpdateBlogHandler applies partial updates to a post
func (h *BlogHandler) UpdateBlogHandler(c *gin.Context) {
	var req dto.UpdateBlogRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.Excerpt != nil {
		updates["excerpt"] = *req.Excerpt
	}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if req.Visibility != nil {
		updates["visibility"] = *req.Visibility
	}
	if req.Tags != nil {
		updates["tags"] = req.Tags
	}
	if req.FeaturedImage != nil {
		updates["featured_image"] = *req.FeaturedImage
	}

	callerID := c.GetString(middleware.CtxUserID)
	blog, err := h.blogUC.UpdateBlog(c.Request.Context(), c.Param("blogID"), callerID, isElevated(c), updates)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToBlogResponse(*blog))
}

// DeleteBlogHandler removes a post
func (h *BlogHandler) DeleteBlogHandler(c *gin.Context) {
	callerID := c.GetString(middleware.CtxUserID)
	if err := h.blogUC.DeleteBlog(c.Request.Context(), c.Param("blogID"), callerID, isElevated(c)); err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "blog deleted")
}

// ScheduleBlogHandler queues a post for future publication
func (h *BlogHandler) ScheduleBlogHandler(c *gin.Context) {
	var req dto.ScheduleBlogRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	blog, err := h.blogUC.Schedule(c.Request.Context(), c.Param("blogID"), req.PublishAt)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToBlogResponse(*blog))
}

// PublishBlogHandler publishes a post immediately
func (h *BlogHandler) PublishBlogHandler(c *gin.Context) {
	blog, err := h.blogUC.Publish(c.Request.Context(), c.Param("blogID"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToBlogResponse(*blog))
}

// ArchiveBlogHandler retires a post from public listings
func (h *BlogHandler) ArchiveBlogHandler(c *gin.Context) {
	blog, err := h.blogUC.Archive(c.Request.Context(), c.Param("blogID"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToBlogResponse(*blog))
}

// TrackBlogViewHandler bumps the view counter
func (h *BlogHandler) TrackBlogViewHandler(c *gin.Context) {
	if err := h.blogUC.IncrementViewCount(c.Request.Context(), c.Param("blogID")); err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "view recorded")
}

// LikeBlogHandler adds the caller to the post's likes set
func (h *BlogHandler) LikeBlogHandler(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserID)
	if err := h.blogUC.Like(c.Request.Context(), c.Param("blogID"), userID); err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "liked")
}

// UnlikeBlogHandler removes the caller from the post's likes set
func (h *BlogHandler) UnlikeBlogHandler(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserID)
	if err := h.blogUC.Unlike(c.Request.Context(), c.Param("blogID"), userID); err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "unliked")
}

// parseFilterOptions reads the list query parameters. Unknown or malformed
// values fall back to defaults handled by the usecase.
func parseFilterOptions(c *gin.Context) *contract.BlogFilterOptions {
	opts := &contract.BlogFilterOptions{
		SortBy:    c.DefaultQuery("sort_by", "created_at"),
		SortOrder: c.DefaultQuery("sort_order", "desc"),
	}
	opts.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	opts.PageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "10"))

	if v := c.Query("status"); v != "" {
		status := entity.BlogStatus(v)
		opts.Status = &status
	}
	if v := c.Query("visibility"); v != "" {
		vis := entity.BlogVisibility(v)
		opts.Visibility = &vis
	}
	if v := c.Query("author_id"); v != "" {
		opts.AuthorID = &v
	}
	if v := c.Query("category_id"); v != "" {
		opts.CategoryID = &v
	}
	if v := c.Query("published_after"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			opts.DateFrom = &t
		}
	}
	if v := c.Query("published_before"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			opts.DateTo = &t
		}
	}
	return opts
}

// isElevated reports whether the caller's role may act on content owned by
// other users.
func isElevated(c *gin.Context) bool {
	role := middleware.RoleFromContext(c)
	return role == entity.UserRoleAdmin || role == entity.UserRoleEditor
}
