package dto

import (
	"time"

	"github.com/bereketsol/Inkwell/internal/domain/entity"
)

// Request DTOs for Blog Handlers

// CreateBlogRequest defines the structure for creating a new blog. Posts
// always start out as drafts; status is not accepted here.
type CreateBlogRequest struct {
	Title      string   `json:"title" binding:"required"`
	Content    string   `json:"content" binding:"required"`
	Excerpt    string   `json:"excerpt"`
	CategoryID string   `json:"category_id"`
	Visibility string   `json:"visibility" binding:"omitempty,oneof=public private unlisted"`
	Tags       []string `json:"tags"`
}

// UpdateBlogRequest defines the structure for updating an existing blog.
// Nil fields are left unchanged.
type UpdateBlogRequest struct {
	Title         *string               `json:"title"`
	Content       *string               `json:"content"`
	Excerpt       *string               `json:"excerpt"`
	CategoryID    *string               `json:"category_id"`
	Visibility    *string               `json:"visibility" binding:"omitempty,oneof=public private unlisted"`
	Tags          []string              `json:"tags"`
	FeaturedImage *entity.FeaturedImage `json:"featured_image"`
}

// ScheduleBlogRequest carries the future publication date.
type ScheduleBlogRequest struct {
	PublishAt time.Time `json:"publish_at" binding:"required"`
}

// Response DTOs

// BlogResponse defines the standard JSON response for a single blog.
type BlogResponse struct {
	ID            string                `json:"id"`
	Title         string                `json:"title"`
	Slug          string                `json:"slug"`
	Content       string                `json:"content"`
	Excerpt       string                `json:"excerpt,omitempty"`
	AuthorID      string                `json:"author_id"`
	CategoryID    string                `json:"category_id,omitempty"`
	Tags          []string              `json:"tags,omitempty"`
	FeaturedImage *entity.FeaturedImage `json:"featured_image,omitempty"`
	Status        string                `json:"status"`
	Visibility    string                `json:"visibility"`
	ViewCount     int                   `json:"view_count"`
	LikeCount     int                   `json:"like_count"`
	PublishedAt   *time.Time            `json:"published_at,omitempty"`
	ScheduledFor  *time.Time            `json:"scheduled_for,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

// PaginatedBlogResponse defines the structure for a paginated list of blogs.
type PaginatedBlogResponse struct {
	Blogs       []BlogResponse `json:"blogs"`
	TotalCount  int            `json:"total_count"`
	CurrentPage int            `json:"current_page"`
	TotalPages  int            `json:"total_pages"`
}

// ToBlogResponse converts an entity.Blog to a BlogResponse DTO.
func ToBlogResponse(blog entity.Blog) BlogResponse {
	return BlogResponse{
		ID:            blog.ID,
		Title:         blog.Title,
		Slug:          blog.Slug,
		Content:       blog.Content,
		Excerpt:       blog.Excerpt,
		AuthorID:      blog.AuthorID,
		CategoryID:    blog.CategoryID,
		Tags:          blog.Tags,
		FeaturedImage: blog.FeaturedImage,
		Status:        string(blog.Status),
		Visibility:    string(blog.Visibility),
		ViewCount:     blog.ViewCount,
		LikeCount:     len(blog.Likes),
		PublishedAt:   blog.PublishedAt,
		ScheduledFor:  blog.ScheduledFor,
		CreatedAt:     blog.CreatedAt,
		UpdatedAt:     blog.UpdatedAt,
	}
}

// ToPaginatedBlogResponse wraps one page of blogs with its pagination
// metadata.
func ToPaginatedBlogResponse(blogs []entity.Blog, total, page, totalPages int) PaginatedBlogResponse {
	out := make([]BlogResponse, 0, len(blogs))
	for _, b := range blogs {
		out = append(out, ToBlogResponse(b))
	}
	return PaginatedBlogResponse{
		Blogs:       out,
		TotalCount:  total,
		CurrentPage: page,
		TotalPages:  totalPages,
	}
}
