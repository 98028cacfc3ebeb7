package authz

// Permission is an opaque token granting one action on one resource type.
// Tokens are compared by equality only.
type Permission string

// User permissions
const (
	PermUserCreate         Permission = "user:create"
	PermUserRead           Permission = "user:read"
	PermUserUpdate         Permission = "user:update"
	PermUserDelete         Permission = "user:delete"
	PermUserChangePassword Permission = "user:change_password"
)

// Blog permissions
const (
	PermBlogCreate Permission = "blog:create"
	PermBlogEdit   Permission = "blog:edit"
	PermBlogDelete Permission = "blog:delete"
	PermBlogRead   Permission = "blog:read"
)

// Category permissions
const (
	PermCategoryCreate Permission = "category:create"
	PermCategoryUpdate Permission = "category:update"
	PermCategoryDelete Permission = "category:delete"
	PermCategoryRead   Permission = "category:read"
)

// Comment permissions
const (
	PermCommentCreate Permission = "comment:create"
	PermCommentUpdate Permission = "comment:update"
	PermCommentDelete Permission = "comment:delete"
	PermCommentRead   Permission = "comment:read"
	PermCommentLike   Permission = "comment:like"
)

// AllPermissions lists every defined permission token. The admin role is
// granted exactly this set.
func AllPermissions() []Permission {
	return []Permission{
		PermUserCreate, PermUserRead, PermUserUpdate, PermUserDelete, PermUserChangePassword,
		PermBlogCreate, PermBlogEdit, PermBlogDelete, PermBlogRead,
		PermCategoryCreate, PermCategoryUpdate, PermCategoryDelete, PermCategoryRead,
		PermCommentCreate, PermCommentUpdate, PermCommentDelete, PermCommentRead, PermCommentLike,
	}
}
