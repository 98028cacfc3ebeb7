package dto

import (
	"time"

	"github.com/bereketsol/Inkwell/internal/domain/entity"
)

// Request DTOs for Auth and User Handlers

// RegisterRequest defines the payload for account registration.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=30"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name" binding:"required"`
}

// LoginRequest accepts an email address or a username as the identifier.
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// RefreshTokenRequest defines the payload for rotating a token pair.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// UpdateProfileRequest defines the mutable profile fields. Nil fields are
// left unchanged.
type UpdateProfileRequest struct {
	Username    *string                 `json:"username"`
	FullName    *string                 `json:"full_name"`
	Bio         *string                 `json:"bio"`
	AvatarURL   *string                 `json:"avatar_url"`
	SocialLinks *entity.SocialLinks     `json:"social_links"`
	Preferences *entity.UserPreferences `json:"preferences"`
}

// ChangePasswordRequest defines the payload for a password change.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

// ChangeRoleRequest defines the payload for an admin role change.
type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=user editor author admin"`
}

// Response DTOs

// UserResponse is the public shape of a user.
type UserResponse struct {
	ID             string             `json:"id"`
	Username       string             `json:"username"`
	Email          string             `json:"email"`
	FullName       string             `json:"full_name"`
	Bio            string             `json:"bio,omitempty"`
	AvatarURL      *string            `json:"avatar_url,omitempty"`
	Role           string             `json:"role"`
	Status         string             `json:"status"`
	SocialLinks    entity.SocialLinks `json:"social_links"`
	FollowerCount  int                `json:"follower_count"`
	FollowingCount int                `json:"following_count"`
	CreatedAt      string             `json:"created_at"`
}

// LoginResponse is the DTO for a successful login.
type LoginResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

// TokenPairResponse is the DTO for a token refresh.
type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// ToUserResponse converts an entity.User to a UserResponse DTO.
func ToUserResponse(user entity.User) UserResponse {
	return UserResponse{
		ID:             user.ID,
		Username:       user.Username,
		Email:          user.Email,
		FullName:       user.FullName,
		Bio:            user.Bio,
		AvatarURL:      user.AvatarURL,
		Role:           string(user.Role),
		Status:         string(user.Status),
		SocialLinks:    user.SocialLinks,
		FollowerCount:  len(user.Followers),
		FollowingCount: len(user.Following),
		CreatedAt:      user.CreatedAt.Format(time.RFC3339),
	}
}

// ToUserResponses maps a slice of users, e.g. a follower listing.
// PaginatedUserResponse wraps a page of the user directory.
type PaginatedUserResponse struct {
	Users       []UserResponse `json:"users"`
	TotalCount  int            `json:"total_count"`
	CurrentPage int            `json:"current_page"`
}

func ToUserResponses(users []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserResponse(*u))
	}
	return out
}
