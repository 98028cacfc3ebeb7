package usecasecontract

import (
	"context"

	"github.com/bereketsol/Inkwell/internal/domain/entity"
)

// IUserUseCase defines account management and the social graph operations.
type IUserUseCase interface {
	Register(ctx context.Context, username, email, password, fullName string) (*entity.User, error)
	Login(ctx context.Context, email, password string) (*entity.User, string, string, error)
	Authenticate(ctx context.Context, accessToken string) (*entity.User, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, string, error)
	Logout(ctx context.Context, refreshToken string) error

	GetUserByID(ctx context.Context, userID string) (*entity.User, error)
	GetUsers(ctx context.Context, page, pageSize int) ([]*entity.User, int, error)
	UpdateProfile(ctx context.Context, userID string, updates map[string]interface{}) (*entity.User, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
	ChangeRole(ctx context.Context, userID string, role entity.UserRole) (*entity.User, error)
	DeactivateUser(ctx context.Context, userID string) error
	DeleteUser(ctx context.Context, userID string) error

	// Social graph. Follow and Unfollow keep both denormalized sides
	// consistent; see the usecase for the write ordering.
	Follow(ctx context.Context, userID, targetUserID string) error
	Unfollow(ctx context.Context, userID, targetUserID string) error
	ListFollowers(ctx context.Context, userID string) ([]*entity.User, error)
	ListFollowing(ctx context.Context, userID string) ([]*entity.User, error)
}
