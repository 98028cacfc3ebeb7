package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bereketsol/Inkwell/internal/domain/contract"
	"github.com/bereketsol/Inkwell/internal/domain/entity"
)

// BlogCacheStore is the Redis-backed implementation of contract.IBlogCache.
type BlogCacheStore struct {
	rdb       *redis.Client
	detailTTL time.Duration
	listTTL   time.Duration
}

var _ contract.IBlogCache = (*BlogCacheStore)(nil)

func NewBlogCacheStore(rdb *redis.Client) *BlogCacheStore {
	return &BlogCacheStore{
		rdb:       rdb,
		detailTTL: 60 * time.Minute,
		listTTL:   30 * time.Minute,
	}
}

func blogDetailKey(slug string) string { return fmt.Sprintf("blog:slug:%s", slug) }

func (c *BlogCacheStore) GetBlogBySlug(ctx context.Context, slug string) (*entity.Blog, bool, error) {
	b, err := c.rdb.Get(ctx, blogDetailKey(slug)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var blog entity.Blog
	if err := json.Unmarshal(b, &blog); err != nil {
		return nil, false, nil
	}
	return &blog, true, nil
}

func (c *BlogCacheStore) SetBlogBySlug(ctx context.Context, slug string, blog *entity.Blog) error {
	data, err := json.Marshal(blog)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, blogDetailKey(slug), data, c.detailTTL).Err()
}

func (c *BlogCacheStore) InvalidateBlogBySlug(ctx context.Context, slug string) error {
	return c.rdb.Del(ctx, blogDetailKey(slug)).Err()
}

func (c *BlogCacheStore) GetBlogsPage(ctx context.Context, key string) (*contract.CachedBlogsPage, bool, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var page contract.CachedBlogsPage
	if err := json.Unmarshal(b, &page); err != nil {
		return nil, false, nil
	}
	return &page, true, nil
}

func (c *BlogCacheStore) SetBlogsPage(ctx context.Context, key string, page *contract.CachedBlogsPage) error {
	data, err := json.Marshal(page)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, data, c.listTTL).Err()
}

// InvalidateBlogLists drops every cached list page. Writes are rare
// relative to reads, so a scan-and-delete keeps the keys simple.
func (c *BlogCacheStore) InvalidateBlogLists(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, "blogs:list:*", 1000).Iterator()
	pipe := c.rdb.Pipeline()
	n := 0
	for iter.Next(ctx) {
		pipe.Del(ctx, iter.Val())
		n++
		if n%200 == 0 {
			if _, err := pipe.Exec(ctx); err != nil {
				return err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}
	_, _ = pipe.Exec(ctx)
	return nil
}
