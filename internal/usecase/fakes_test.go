package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bereketsol/Inkwell/internal/domain/apperr"
	"github.com/bereketsol/Inkwell/internal/domain/contract"
	"github.com/bereketsol/Inkwell/internal/domain/entity"
)

// In-memory repository fakes shared by the usecase tests. They mirror the
// document-store semantics the mongodb package implements: set-adds are
// idempotent, pulls are no-ops on absent members, and lookups of missing
// documents return NotFound.

type fakeUserRepo struct {
	users map[string]*entity.User
}

var _ contract.IUserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) seed(u entity.User) *entity.User {
	if u.Followers == nil {
		u.Followers = []string{}
	}
	if u.Following == nil {
		u.Following = []string{}
	}
	if u.Status == "" {
		u.Status = entity.UserStatusActive
	}
	r.users[u.ID] = &u
	return &u
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, user *entity.User) error {
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return apperr.New(apperr.Conflict, "user already exists")
		}
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperr.New(apperr.NotFound, "user not found")
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperr.New(apperr.NotFound, "user not found")
}

func (r *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperr.New(apperr.NotFound, "user not found")
}

func (r *fakeUserRepo) GetUsers(ctx context.Context, page, pageSize int) ([]*entity.User, int64, error) {
	all := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	total := int64(len(all))
	start := (page - 1) * pageSize
	if start >= len(all) {
		return []*entity.User{}, total, nil
	}
	end := start + pageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (r *fakeUserRepo) UpdateUser(ctx context.Context, id string, updates map[string]interface{}) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperr.New(apperr.NotFound, "user not found")
	}
	for key, value := range updates {
		switch key {
		case "username":
			u.Username = value.(string)
		case "email":
			u.Email = value.(string)
		case "full_name":
			u.FullName = value.(string)
		case "bio":
			u.Bio = value.(string)
		case "avatar_url":
			s := value.(string)
			u.AvatarURL = &s
		case "social_links":
			u.SocialLinks = value.(entity.SocialLinks)
		case "preferences":
			u.Preferences = value.(entity.UserPreferences)
		case "refresh_token":
			u.RefreshToken = value.(string)
		case "last_login":
			t := value.(time.Time)
			u.LastLogin = &t
		case "role":
			u.Role = value.(entity.UserRole)
		case "status":
			u.Status = value.(entity.UserStatus)
		case "updated_at":
			u.UpdatedAt = value.(time.Time)
		}
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) UpdateUserPassword(ctx context.Context, id string, hashedPassword string) error {
	u, ok := r.users[id]
	if !ok {
		return apperr.New(apperr.NotFound, "user not found")
	}
	u.PasswordHash = hashedPassword
	return nil
}

func (r *fakeUserRepo) DeleteUser(ctx context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return apperr.New(apperr.NotFound, "user not found")
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) AddFollower(ctx context.Context, targetUserID, followerID string) error {
	u, ok := r.users[targetUserID]
	if !ok {
		return apperr.New(apperr.NotFound, "user not found")
	}
	u.Followers = addToSet(u.Followers, followerID)
	return nil
}

func (r *fakeUserRepo) RemoveFollower(ctx context.Context, targetUserID, followerID string) error {
	u, ok := r.users[targetUserID]
	if !ok {
		return apperr.New(apperr.NotFound, "user not found")
	}
	u.Followers = removeFromSet(u.Followers, followerID)
	return nil
}

func (r *fakeUserRepo) AddFollowing(ctx context.Context, userID, targetUserID string) error {
	u, ok := r.users[userID]
	if !ok {
		return apperr.New(apperr.NotFound, "user not found")
	}
	u.Following = addToSet(u.Following, targetUserID)
	return nil
}

func (r *fakeUserRepo) RemoveFollowing(ctx context.Context, userID, targetUserID string) error {
	u, ok := r.users[userID]
	if !ok {
		return apperr.New(apperr.NotFound, "user not found")
	}
	u.Following = removeFromSet(u.Following, targetUserID)
	return nil
}

func (r *fakeUserRepo) GetUsersByIDs(ctx context.Context, ids []string) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func addToSet(set []string, member string) []string {
	for _, m := range set {
		if m == member {
			return set
		}
	}
	return append(set, member)
}

func removeFromSet(set []string, member string) []string {
	out := set[:0]
	for _, m := range set {
		if m != member {
			out = append(out, m)
		}
	}
	return out
}

type fakeBlogRepo struct {
	blogs map[string]*entity.Blog
	order []string
}

var _ contract.IBlogRepository = (*fakeBlogRepo)(nil)

func newFakeBlogRepo() *fakeBlogRepo {
	return &fakeBlogRepo{blogs: map[string]*entity.Blog{}}
}

func (r *fakeBlogRepo) CreateBlog(ctx context.Context, blog *entity.Blog) error {
	cp := *blog
	r.blogs[blog.ID] = &cp
	r.order = append(r.order, blog.ID)
	return nil
}

func (r *fakeBlogRepo) GetBlogByID(ctx context.Context, blogID string) (*entity.Blog, error) {
	b, ok := r.blogs[blogID]
	if !ok {
		return nil, apperr.New(apperr.NotFound, "blog not found")
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBlogRepo) GetBlogBySlug(ctx context.Context, slug string) (*entity.Blog, error) {
	for _, b := range r.blogs {
		if b.Slug == slug {
			cp := *b
			return &cp, nil
		}
	}
	return nil, apperr.New(apperr.NotFound, "blog not found")
}

func (r *fakeBlogRepo) GetBlogs(ctx context.Context, opts *contract.BlogFilterOptions) ([]*entity.Blog, int64, error) {
	var out []*entity.Blog
	for _, id := range r.order {
		b := r.blogs[id]
		if opts.Status != nil && b.Status != *opts.Status {
			continue
		}
		if opts.AuthorID != nil && b.AuthorID != *opts.AuthorID {
			continue
		}
		if opts.CategoryID != nil && b.CategoryID != *opts.CategoryID {
			continue
		}
		if opts.DateFrom != nil && (b.PublishedAt == nil || b.PublishedAt.Before(*opts.DateFrom)) {
			continue
		}
		if opts.DateTo != nil && (b.PublishedAt == nil || b.PublishedAt.After(*opts.DateTo)) {
			continue
		}
		cp := *b
		out = append(out, &cp)
	}
	return out, int64(len(out)), nil
}

func (r *fakeBlogRepo) UpdateBlog(ctx context.Context, blogID string, updates map[string]interface{}) error {
	b, ok := r.blogs[blogID]
	if !ok {
		return apperr.New(apperr.NotFound, "blog not found")
	}
	for key, value := range updates {
		switch key {
		case "title":
			b.Title = value.(string)
		case "content":
			b.Content = value.(string)
		case "excerpt":
			b.Excerpt = value.(string)
		case "slug":
			b.Slug = value.(string)
		case "category_id":
			b.CategoryID = value.(string)
		case "tags":
			b.Tags = value.([]string)
		case "visibility":
			switch v := value.(type) {
			case entity.BlogVisibility:
				b.Visibility = v
			case string:
				b.Visibility = entity.BlogVisibility(v)
			}
		case "featured_image":
			img := value.(entity.FeaturedImage)
			b.FeaturedImage = &img
		case "updated_at":
			b.UpdatedAt = value.(time.Time)
		}
	}
	return nil
}

func (r *fakeBlogRepo) DeleteBlog(ctx context.Context, blogID string) error {
	if _, ok := r.blogs[blogID]; !ok {
		return apperr.New(apperr.NotFound, "blog not found")
	}
	delete(r.blogs, blogID)
	for i, id := range r.order {
		if id == blogID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *fakeBlogRepo) Schedule(ctx context.Context, blogID string, publishDate time.Time) error {
	b, ok := r.blogs[blogID]
	if !ok {
		return apperr.New(apperr.NotFound, "blog not found")
	}
	b.Status = entity.BlogStatusDraft
	d := publishDate
	b.ScheduledFor = &d
	return nil
}

func (r *fakeBlogRepo) Publish(ctx context.Context, blogID string, publishedAt time.Time) error {
	b, ok := r.blogs[blogID]
	if !ok {
		return apperr.New(apperr.NotFound, "blog not found")
	}
	b.Status = entity.BlogStatusPublished
	t := publishedAt
	b.PublishedAt = &t
	b.ScheduledFor = nil
	return nil
}

func (r *fakeBlogRepo) Archive(ctx context.Context, blogID string) error {
	b, ok := r.blogs[blogID]
	if !ok {
		return apperr.New(apperr.NotFound, "blog not found")
	}
	b.Status = entity.BlogStatusArchived
	return nil
}

func (r *fakeBlogRepo) IncrementViewCount(ctx context.Context, blogID string) error {
	b, ok := r.blogs[blogID]
	if !ok {
		return apperr.New(apperr.NotFound, "blog not found")
	}
	b.ViewCount++
	return nil
}

func (r *fakeBlogRepo) AddLike(ctx context.Context, blogID, userID string, likedAt time.Time) error {
	b, ok := r.blogs[blogID]
	if !ok {
		return apperr.New(apperr.NotFound, "blog not found")
	}
	for _, l := range b.Likes {
		if l.UserID == userID {
			return nil
		}
	}
	b.Likes = append(b.Likes, entity.BlogLike{UserID: userID, LikedAt: likedAt})
	return nil
}

func (r *fakeBlogRepo) RemoveLike(ctx context.Context, blogID, userID string) error {
	b, ok := r.blogs[blogID]
	if !ok {
		return apperr.New(apperr.NotFound, "blog not found")
	}
	out := b.Likes[:0]
	for _, l := range b.Likes {
		if l.UserID != userID {
			out = append(out, l)
		}
	}
	b.Likes = out
	return nil
}

type fakeCommentRepo struct {
	comments map[string]*entity.Comment
	order    []string
}

var _ contract.ICommentRepository = (*fakeCommentRepo)(nil)

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: map[string]*entity.Comment{}}
}

func (r *fakeCommentRepo) Create(ctx context.Context, comment *entity.Comment) error {
	cp := *comment
	r.comments[comment.ID] = &cp
	r.order = append(r.order, comment.ID)
	return nil
}

func (r *fakeCommentRepo) GetByID(ctx context.Context, id string) (*entity.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, apperr.New(apperr.NotFound, "comment not found")
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCommentRepo) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	c, ok := r.comments[id]
	if !ok {
		return apperr.New(apperr.NotFound, "comment not found")
	}
	for key, value := range updates {
		switch key {
		case "content":
			c.Content = value.(string)
		case "is_edited":
			c.IsEdited = value.(bool)
		case "updated_at":
			t := value.(time.Time)
			c.UpdatedAt = &t
		}
	}
	return nil
}

func (r *fakeCommentRepo) SoftDelete(ctx context.Context, id string) error {
	c, ok := r.comments[id]
	if !ok {
		return apperr.New(apperr.NotFound, "comment not found")
	}
	c.IsDeleted = true
	return nil
}

func (r *fakeCommentRepo) HardDelete(ctx context.Context, id string) error {
	if _, ok := r.comments[id]; !ok {
		return apperr.New(apperr.NotFound, "comment not found")
	}
	delete(r.comments, id)
	for i, cid := range r.order {
		if cid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *fakeCommentRepo) ListByPost(ctx context.Context, postID string) ([]*entity.Comment, error) {
	var out []*entity.Comment
	for _, id := range r.order {
		c := r.comments[id]
		if c.PostID == postID && !c.IsDeleted {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeCommentRepo) CountByPost(ctx context.Context, postID string) (int64, error) {
	var n int64
	for _, c := range r.comments {
		if c.PostID == postID && !c.IsDeleted {
			n++
		}
	}
	return n, nil
}

func (r *fakeCommentRepo) AddLike(ctx context.Context, commentID, userID string) error {
	c, ok := r.comments[commentID]
	if !ok {
		return apperr.New(apperr.NotFound, "comment not found")
	}
	c.Likes = addToSet(c.Likes, userID)
	return nil
}

func (r *fakeCommentRepo) RemoveLike(ctx context.Context, commentID, userID string) error {
	c, ok := r.comments[commentID]
	if !ok {
		return apperr.New(apperr.NotFound, "comment not found")
	}
	c.Likes = removeFromSet(c.Likes, userID)
	return nil
}

type fakeCategoryRepo struct {
	categories map[string]*entity.Category
	order      []string
}

var _ contract.ICategoryRepository = (*fakeCategoryRepo)(nil)

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: map[string]*entity.Category{}}
}

func (r *fakeCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	cp := *category
	r.categories[category.ID] = &cp
	r.order = append(r.order, category.ID)
	return nil
}

func (r *fakeCategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, apperr.New(apperr.NotFound, "category not found")
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategoryRepo) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.Slug == slug {
			cp := *c
			return &cp, nil
		}
	}
	return nil, apperr.New(apperr.NotFound, "category not found")
}

func (r *fakeCategoryRepo) List(ctx context.Context, onlyActive bool) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, id := range r.order {
		c := r.categories[id]
		if onlyActive && !c.IsActive {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeCategoryRepo) ListChildren(ctx context.Context, parentID string) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, id := range r.order {
		c := r.categories[id]
		if c.ParentID != nil && *c.ParentID == parentID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	c, ok := r.categories[id]
	if !ok {
		return apperr.New(apperr.NotFound, "category not found")
	}
	for key, value := range updates {
		switch key {
		case "name":
			c.Name = value.(string)
		case "slug":
			c.Slug = value.(string)
		case "description":
			c.Description = value.(string)
		case "icon":
			c.Icon = value.(string)
		case "color":
			c.Color = value.(string)
		case "parent_id":
			s := value.(string)
			c.ParentID = &s
		case "is_active":
			c.IsActive = value.(bool)
		case "updated_at":
			t := value.(time.Time)
			c.UpdatedAt = &t
		}
	}
	return nil
}

func (r *fakeCategoryRepo) SoftDelete(ctx context.Context, id string) error {
	c, ok := r.categories[id]
	if !ok {
		return apperr.New(apperr.NotFound, "category not found")
	}
	c.IsActive = false
	return nil
}

func (r *fakeCategoryRepo) HardDelete(ctx context.Context, id string) error {
	if _, ok := r.categories[id]; !ok {
		return apperr.New(apperr.NotFound, "category not found")
	}
	delete(r.categories, id)
	for i, cid := range r.order {
		if cid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *fakeCategoryRepo) IncrementPostCount(ctx context.Context, id string) error {
	c, ok := r.categories[id]
	if !ok {
		return apperr.New(apperr.NotFound, "category not found")
	}
	c.PostCount++
	return nil
}

func (r *fakeCategoryRepo) DecrementPostCount(ctx context.Context, id string) error {
	c, ok := r.categories[id]
	if !ok {
		return apperr.New(apperr.NotFound, "category not found")
	}
	if c.PostCount > 0 {
		c.PostCount--
	}
	return nil
}

// Service fakes

type fakeHasher struct{}

var _ contract.IHasher = (*fakeHasher)(nil)

func (fakeHasher) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) ComparePasswordHash(password, hashedPassword string) error {
	if "hashed:"+password != hashedPassword {
		return fmt.Errorf("password mismatch")
	}
	return nil
}

func (fakeHasher) HashString(s string) string { return "digest:" + s }

func (fakeHasher) CheckHash(s, hash string) bool { return "digest:"+s == hash }

type fakeJWTService struct {
	tokenSeq int
}

var _ JWTService = (*fakeJWTService)(nil)

func (f *fakeJWTService) GenerateAccessToken(userID string, role entity.UserRole) (string, error) {
	return "access|" + userID + "|" + string(role), nil
}

func (f *fakeJWTService) GenerateRefreshToken(userID string) (string, error) {
	f.tokenSeq++
	return fmt.Sprintf("refresh|%s|%d", userID, f.tokenSeq), nil
}

func (f *fakeJWTService) ParseAccessToken(token string) (*entity.Claims, error) {
	parts := strings.Split(token, "|")
	if len(parts) != 3 || parts[0] != "access" {
		return nil, fmt.Errorf("malformed token")
	}
	return &entity.Claims{UserID: parts[1], Role: entity.UserRole(parts[2])}, nil
}

func (f *fakeJWTService) ParseRefreshToken(token string) (*entity.Claims, error) {
	parts := strings.Split(token, "|")
	if len(parts) != 3 || parts[0] != "refresh" {
		return nil, fmt.Errorf("malformed token")
	}
	return &entity.Claims{UserID: parts[1]}, nil
}

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...interface{})   {}
func (nopLogger) Infof(format string, args ...interface{})    {}
func (nopLogger) Warnf(format string, args ...interface{})    {}
func (nopLogger) Warningf(format string, args ...interface{}) {}
func (nopLogger) Errorf(format string, args ...interface{})   {}
func (nopLogger) Fatalf(format string, args ...interface{})   {}

type fakeConfig struct{}

func (fakeConfig) GetAppBaseURL() string                { return "http://localhost:8080" }
func (fakeConfig) GetAccessTokenExpiry() time.Duration  { return 15 * time.Minute }
func (fakeConfig) GetRefreshTokenExpiry() time.Duration { return 7 * 24 * time.Hour }

type fakeValidator struct{}

func (fakeValidator) ValidateEmail(email string) error {
	if !strings.Contains(email, "@") {
		return fmt.Errorf("invalid email")
	}
	return nil
}

func (fakeValidator) ValidateUsername(username string) error {
	if len(username) < 3 {
		return fmt.Errorf("username too short")
	}
	return nil
}

func (fakeValidator) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password too short")
	}
	return nil
}

// seqUUIDGen emits ids that look like real generated ids so id-or-slug
// detection behaves the same as in production.
type seqUUIDGen struct {
	n int
}

func (g *seqUUIDGen) NewUUID() string {
	g.n++
	return fmt.Sprintf("00000000-0000-0000-0000-%012d", g.n)
}
