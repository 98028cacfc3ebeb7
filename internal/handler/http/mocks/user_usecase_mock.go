package mocks

import (
	"context"

	"github.com/bereketsol/Inkwell/internal/domain/apperr"
	"github.com/bereketsol/Inkwell/internal/domain/entity"
	usecasecontract "github.com/bereketsol/Inkwell/internal/usecase/contract"
)

// MockUserUsecase is a mock implementation of the IUserUseCase interface
type MockUserUsecase struct {
	// Control mock behavior
	ShouldFailRegister       bool
	ShouldFailLogin          bool
	ShouldFailAuthenticate   bool
	ShouldFailRefreshToken   bool
	ShouldFailLogout         bool
	ShouldFailGetByID        bool
	ShouldFailGetUsers       bool
	ShouldFailUpdateProfile  bool
	ShouldFailChangePassword bool
	ShouldFailChangeRole     bool
	ShouldFailDeactivate     bool
	ShouldFailDelete         bool
	ShouldFailFollow         bool
	ShouldFailUnfollow       bool
	ShouldFailListFollowers  bool
	ShouldFailListFollowing  bool

	// FollowErr overrides the generic failure for Follow when set.
	FollowErr error

	// LastProfileUpdates records the patch UpdateProfile was last called with.
	LastProfileUpdates map[string]interface{}

	// Return values
	MockUser         entity.User
	MockFollowers    []*entity.User
	MockAccessToken  string
	MockRefreshToken string
}

// Ensure MockUserUsecase implements the correct interface for handler.NewUserHandler
var _ usecasecontract.IUserUseCase = (*MockUserUsecase)(nil)

func NewMockUserUsecase() *MockUserUsecase {
	return &MockUserUsecase{
		MockUser: entity.User{
			ID:       "mock-user-id",
			Username: "testuser",
			Email:    "test@example.com",
			Role:     entity.UserRoleUser,
			Status:   entity.UserStatusActive,
		},
		MockAccessToken:  "mock_access_token",
		MockRefreshToken: "mock_refresh_token",
	}
}

func (m *MockUserUsecase) Register(ctx context.Context, username, email, password, fullName string) (*entity.User, error) {
	if m.ShouldFailRegister {
		return nil, apperr.New(apperr.Conflict, "username is already taken")
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) Login(ctx context.Context, identifier, password string) (*entity.User, string, string, error) {
	if m.ShouldFailLogin {
		return nil, "", "", apperr.New(apperr.Unauthorized, "invalid credentials")
	}
	return &m.MockUser, m.MockAccessToken, m.MockRefreshToken, nil
}

func (m *MockUserUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	if m.ShouldFailAuthenticate {
		return nil, apperr.New(apperr.Unauthorized, "invalid token")
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) RefreshToken(ctx context.Context, refreshToken string) (string, string, error) {
	if m.ShouldFailRefreshToken {
		return "", "", apperr.New(apperr.Unauthorized, "invalid refresh token")
	}
	return m.MockAccessToken, m.MockRefreshToken, nil
}

func (m *MockUserUsecase) Logout(ctx context.Context, refreshToken string) error {
	if m.ShouldFailLogout {
		return apperr.New(apperr.Internal, "logout failed")
	}
	return nil
}

func (m *MockUserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	if m.ShouldFailGetByID {
		return nil, apperr.New(apperr.NotFound, "user not found")
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) GetUsers(ctx context.Context, page, pageSize int) ([]*entity.User, int, error) {
	if m.ShouldFailGetUsers {
		return nil, 0, apperr.New(apperr.Internal, "query failed")
	}
	return []*entity.User{&m.MockUser}, 1, nil
}

func (m *MockUserUsecase) UpdateProfile(ctx context.Context, userID string, updates map[string]interface{}) (*entity.User, error) {
	m.LastProfileUpdates = updates
	if m.ShouldFailUpdateProfile {
		return nil, apperr.New(apperr.Conflict, "username is already taken")
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	if m.ShouldFailChangePassword {
		return apperr.New(apperr.Unauthorized, "current password is incorrect")
	}
	return nil
}

func (m *MockUserUsecase) ChangeRole(ctx context.Context, userID string, role entity.UserRole) (*entity.User, error) {
	if m.ShouldFailChangeRole {
		return nil, apperr.New(apperr.NotFound, "user not found")
	}
	u := m.MockUser
	u.Role = role
	return &u, nil
}

func (m *MockUserUsecase) DeactivateUser(ctx context.Context, userID string) error {
	if m.ShouldFailDeactivate {
		return apperr.New(apperr.NotFound, "user not found")
	}
	return nil
}

func (m *MockUserUsecase) DeleteUser(ctx context.Context, userID string) error {
	if m.ShouldFailDelete {
		return apperr.New(apperr.NotFound, "user not found")
	}
	return nil
}

func (m *MockUserUsecase) Follow(ctx context.Context, userID, targetUserID string) error {
	if m.FollowErr != nil {
		return m.FollowErr
	}
	if m.ShouldFailFollow {
		return apperr.New(apperr.Conflict, "already following this user")
	}
	return nil
}

func (m *MockUserUsecase) Unfollow(ctx context.Context, userID, targetUserID string) error {
	if m.ShouldFailUnfollow {
		return apperr.New(apperr.NotFound, "user not found")
	}
	return nil
}

func (m *MockUserUsecase) ListFollowers(ctx context.Context, userID string) ([]*entity.User, error) {
	if m.ShouldFailListFollowers {
		return nil, apperr.New(apperr.NotFound, "user not found")
	}
	return m.MockFollowers, nil
}

func (m *MockUserUsecase) ListFollowing(ctx context.Context, userID string) ([]*entity.User, error) {
	if m.ShouldFailListFollowing {
		return nil, apperr.New(apperr.NotFound, "user not found")
	}
	return m.MockFollowers, nil
}
