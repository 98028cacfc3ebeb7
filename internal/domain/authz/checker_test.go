package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bereketsol/Inkwell/internal/domain/entity"
)

func TestAdminHasEveryPermission(t *testing.T) {
	checker := NewChecker()
	for _, p := range AllPermissions() {
		assert.True(t, checker.Allow(entity.UserRoleAdmin, p), "admin should hold %s", p)
	}
}

func TestRoleGrants(t *testing.T) {
	checker := NewChecker()

	cases := []struct {
		role       entity.UserRole
		permission Permission
		want       bool
	}{
		{entity.UserRoleUser, PermBlogRead, true},
		{entity.UserRoleUser, PermCommentCreate, true},
		{entity.UserRoleUser, PermCommentRead, true},
		{entity.UserRoleUser, PermBlogCreate, false},
		{entity.UserRoleUser, PermCommentDelete, false},
		{entity.UserRoleUser, PermCategoryCreate, false},

		{entity.UserRoleAuthor, PermBlogCreate, true},
		{entity.UserRoleAuthor, PermBlogEdit, true},
		{entity.UserRoleAuthor, PermBlogRead, true},
		{entity.UserRoleAuthor, PermBlogDelete, false},
		{entity.UserRoleAuthor, PermCommentCreate, true},
		{entity.UserRoleAuthor, PermCommentDelete, false},

		{entity.UserRoleEditor, PermBlogCreate, true},
		{entity.UserRoleEditor, PermBlogEdit, true},
		{entity.UserRoleEditor, PermBlogDelete, true},
		{entity.UserRoleEditor, PermCategoryRead, true},
		{entity.UserRoleEditor, PermCommentDelete, true},
		{entity.UserRoleEditor, PermCategoryCreate, false},
		{entity.UserRoleEditor, PermUserDelete, false},

		{entity.UserRoleAdmin, PermCommentLike, true},
		{entity.UserRoleUser, PermCommentLike, false},
		{entity.UserRoleEditor, PermCommentLike, false},
		{entity.UserRoleAuthor, PermCommentLike, false},
	}

	for _, tc := range cases {
		got := checker.Allow(tc.role, tc.permission)
		assert.Equal(t, tc.want, got, "role=%s permission=%s", tc.role, tc.permission)
	}
}

func TestUnknownRoleDeniesEverything(t *testing.T) {
	checker := NewChecker()
	for _, p := range AllPermissions() {
		assert.False(t, checker.Allow(entity.UserRole("ghost"), p))
	}
}

func TestChecksAreDeterministic(t *testing.T) {
	checker := NewChecker()
	for i := 0; i < 100; i++ {
		assert.True(t, checker.Allow(entity.UserRoleEditor, PermBlogDelete))
		assert.False(t, checker.Allow(entity.UserRoleAuthor, PermBlogDelete))
	}
}
