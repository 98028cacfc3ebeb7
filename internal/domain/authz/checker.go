// Package authz holds the static role-to-permission table and the
// authorization check applied before every mutating route.
package authz

import (
	"github.com/bereketsol/Inkwell/internal/domain/entity"
)

// Checker answers allow/deny questions against an immutable
// role-to-permission table. Build it once at startup with NewChecker and
// inject it; it is never mutated afterwards and is safe for concurrent use.
type Checker struct {
	table map[entity.UserRole]map[Permission]struct{}
}

// NewChecker builds the default permission table. Admin holds the union of
// all defined permissions; every other role is an explicit subset.
func NewChecker() *Checker {
	table := map[entity.UserRole]map[Permission]struct{}{
		entity.UserRoleAdmin: permSet(AllPermissions()...),
		entity.UserRoleEditor: permSet(
			PermBlogCreate, PermBlogEdit, PermBlogDelete,
			PermCategoryRead,
			PermCommentRead, PermCommentDelete, PermCommentCreate,
		),
		entity.UserRoleAuthor: permSet(
			PermBlogCreate, PermBlogEdit, PermBlogRead,
			PermCommentCreate, PermCommentRead,
		),
		entity.UserRoleUser: permSet(
			PermBlogRead,
			PermCommentCreate, PermCommentRead,
		),
	}
	return &Checker{table: table}
}

// Allow reports whether role holds the given permission. Unknown roles
// hold no permissions (deny by default).
func (c *Checker) Allow(role entity.UserRole, permission Permission) bool {
	perms, ok := c.table[role]
	if !ok {
		return false
	}
	_, ok = perms[permission]
	return ok
}

func permSet(perms ...Permission) map[Permission]struct{} {
	set := make(map[Permission]struct{}, len(perms))
	for _, p := range perms {
		set[p] = struct{}{}
	}
	return set
}
