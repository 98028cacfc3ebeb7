package contract

import (
	"context"

	"github.com/bereketsol/Inkwell/internal/domain/entity"
)

// IUUIDGenerator abstracts id generation so usecases stay deterministic
// under test.
type IUUIDGenerator interface {
	NewUUID() string
}

// IHasher covers password hashing and refresh-token digests.
type IHasher interface {
	HashPassword(password string) (string, error)
	ComparePasswordHash(password, hashedPassword string) error
	HashString(s string) string
	CheckHash(s, hash string) bool
}

// CachedBlogsPage is the serialized form of one cached blog list page.
type CachedBlogsPage struct {
	Blogs []entity.Blog `json:"blogs"`
	Total int           `json:"total"`
}

// IBlogCache is an optional read-through cache for blog detail and list
// queries. A nil implementation is valid; usecases must tolerate cache
// errors silently.
type IBlogCache interface {
	GetBlogBySlug(ctx context.Context, slug string) (*entity.Blog, bool, error)
	SetBlogBySlug(ctx context.Context, slug string, blog *entity.Blog) error
	InvalidateBlogBySlug(ctx context.Context, slug string) error
	GetBlogsPage(ctx context.Context, key string) (*CachedBlogsPage, bool, error)
	SetBlogsPage(ctx context.Context, key string, page *CachedBlogsPage) error
	InvalidateBlogLists(ctx context.Context) error
}
