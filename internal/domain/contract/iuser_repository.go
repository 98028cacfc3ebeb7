package contract

import (
	"context"

	"github.com/bereketsol/Inkwell/internal/domain/entity"
)

type IUserRepository interface {
	CreateUser(ctx context.Context, user *entity.User) error
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	// GetUserByUsername retrieves a user by username (stored lowercase).
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)
	// GetUserByEmail retrieves a user by email.
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	// GetUsers returns a page of all users plus the total count.
	GetUsers(ctx context.Context, page, pageSize int) ([]*entity.User, int64, error)
	// UpdateUser applies a partial-field patch and returns the updated user.
	UpdateUser(ctx context.Context, id string, updates map[string]interface{}) (*entity.User, error)
	// UpdateUserPassword updates the password hash for a user by ID.
	UpdateUserPassword(ctx context.Context, id string, hashedPassword string) error
	// DeleteUser removes a user document by ID.
	DeleteUser(ctx context.Context, id string) error

	// Social graph primitives. Each call is a single-document atomic
	// set-add or set-remove; the usecase composes them in a fixed order
	// (followers side first, then following side).
	AddFollower(ctx context.Context, targetUserID, followerID string) error
	RemoveFollower(ctx context.Context, targetUserID, followerID string) error
	AddFollowing(ctx context.Context, userID, targetUserID string) error
	RemoveFollowing(ctx context.Context, userID, targetUserID string) error
	// GetUsersByIDs resolves a follower/following id set to user records.
	GetUsersByIDs(ctx context.Context, ids []string) ([]*entity.User, error)
}
