package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/bereketsol/Inkwell/internal/domain/entity"
	handler "github.com/bereketsol/Inkwell/internal/handler/http"
	dto "github.com/bereketsol/Inkwell/internal/handler/http/dto"
	mocks "github.com/bereketsol/Inkwell/internal/handler/http/mocks"
)

func setupBlogRouter(h *handler.BlogHandler, role entity.UserRole) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.Default()
	authed := func(c *gin.Context) {
		c.Set("userID", "mock-user-id")
		c.Set("userRole", role)
		c.Next()
	}
	r.GET("/blogs", h.GetBlogsHandler)
	r.GET("/blogs/:blogID", h.GetBlogDetailHandler)
	r.POST("/blogs", authed, h.CreateBlogHandler)
	r.PUT("/blogs/:blogID", authed, h.UpdateBlogHandler)
	r.POST("/blogs/:blogID/schedule", authed, h.ScheduleBlogHandler)
	r.POST("/blogs/:blogID/publish", authed, h.PublishBlogHandler)
	r.POST("/blogs/:blogID/like", authed, h.LikeBlogHandler)
	return r
}

func TestCreateBlog(t *testing.T) {
	mockUsecase := mocks.NewMockBlogUsecase()
	h := handler.NewBlogHandler(mockUsecase)
	r := setupBlogRouter(h, entity.UserRoleAuthor)
	payload := dto.CreateBlogRequest{
		Title:   "A Test Post",
		Content: "content",
	}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/blogs", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "a-test-post")
	assert.Contains(t, w.Body.String(), `"status":"draft"`)
}

func TestCreateBlog_MissingTitle(t *testing.T) {
	mockUsecase := mocks.NewMockBlogUsecase()
	h := handler.NewBlogHandler(mockUsecase)
	r := setupBlogRouter(h, entity.UserRoleAuthor)
	body, _ := json.Marshal(dto.CreateBlogRequest{Content: "content"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/blogs", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Field validation for 'Title' failed on the 'required' tag")
}

func TestGetBlogs(t *testing.T) {
	mockUsecase := mocks.NewMockBlogUsecase()
	h := handler.NewBlogHandler(mockUsecase)
	r := setupBlogRouter(h, entity.UserRoleUser)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/blogs?page=1&page_size=10", nil)

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_count":1`)
}

func TestGetBlogs_PublishedWindowParams(t *testing.T) {
	mockUsecase := mocks.NewMockBlogUsecase()
	h := handler.NewBlogHandler(mockUsecase)
	r := setupBlogRouter(h, entity.UserRoleUser)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/blogs?published_after=2025-01-01T00:00:00Z&published_before=2025-06-30T00:00:00Z", nil)

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	if assert.NotNil(t, mockUsecase.LastFilter) {
		if assert.NotNil(t, mockUsecase.LastFilter.DateFrom) {
			assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), mockUsecase.LastFilter.DateFrom.UTC())
		}
		if assert.NotNil(t, mockUsecase.LastFilter.DateTo) {
			assert.Equal(t, time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), mockUsecase.LastFilter.DateTo.UTC())
		}
	}
}

func TestGetBlogs_MalformedDateIgnored(t *testing.T) {
	mockUsecase := mocks.NewMockBlogUsecase()
	h := handler.NewBlogHandler(mockUsecase)
	r := setupBlogRouter(h, entity.UserRoleUser)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/blogs?published_after=yesterday", nil)

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	if assert.NotNil(t, mockUsecase.LastFilter) {
		assert.Nil(t, mockUsecase.LastFilter.DateFrom)
	}
}

func TestGetBlogDetail_NotFound(t *testing.T) {
	mockUsecase := mocks.NewMockBlogUsecase()
	mockUsecase.ShouldFailGet = true
	h := handler.NewBlogHandler(mockUsecase)
	r := setupBlogRouter(h, entity.UserRoleUser)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/blogs/no-such-post", nil)

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateBlog_Forbidden(t *testing.T) {
	mockUsecase := mocks.NewMockBlogUsecase()
	mockUsecase.UpdateForbidden = true
	h := handler.NewBlogHandler(mockUsecase)
	r := setupBlogRouter(h, entity.UserRoleUser)
	title := "New Title"
	body, _ := json.Marshal(dto.UpdateBlogRequest{Title: &title})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/blogs/mock-blog-id", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestScheduleBlog_PastDate(t *testing.T) {
	mockUsecase := mocks.NewMockBlogUsecase()
	mockUsecase.ShouldFailSchedule = true
	h := handler.NewBlogHandler(mockUsecase)
	r := setupBlogRouter(h, entity.UserRoleAuthor)
	body, _ := json.Marshal(dto.ScheduleBlogRequest{PublishAt: time.Now().Add(-time.Hour)})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/blogs/mock-blog-id/schedule", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "publish date must be in the future")
}

func TestPublishBlog(t *testing.T) {
	mockUsecase := mocks.NewMockBlogUsecase()
	h := handler.NewBlogHandler(mockUsecase)
	r := setupBlogRouter(h, entity.UserRoleAuthor)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/blogs/mock-blog-id/publish", nil)

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"published"`)
}

func TestPublishBlog_AlreadyPublished(t *testing.T) {
	mockUsecase := mocks.NewMockBlogUsecase()
	mockUsecase.ShouldFailPublish = true
	h := handler.NewBlogHandler(mockUsecase)
	r := setupBlogRouter(h, entity.UserRoleAuthor)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/blogs/mock-blog-id/publish", nil)

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLikeBlog(t *testing.T) {
	mockUsecase := mocks.NewMockBlogUsecase()
	h := handler.NewBlogHandler(mockUsecase)
	r := setupBlogRouter(h, entity.UserRoleUser)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/blogs/mock-blog-id/like", nil)

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
