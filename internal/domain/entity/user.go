package entity

import (
	"time"
)

// User represents a registered user in the system
type User struct {
	ID           string          `bson:"_id,omitempty" json:"id"`
	Username     string          `bson:"username" json:"username"`
	Email        string          `bson:"email" json:"email"`
	PasswordHash string          `bson:"password_hash" json:"-"`
	FullName     string          `bson:"full_name" json:"full_name"`
	Bio          string          `bson:"bio" json:"bio"`
	AvatarURL    *string         `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	Role         UserRole        `bson:"role" json:"role"`
	Status       UserStatus      `bson:"status" json:"status"`
	IsVerified   bool            `bson:"is_verified" json:"is_verified"`
	SocialLinks  SocialLinks     `bson:"social_links" json:"social_links"`
	Followers    []string        `bson:"followers" json:"followers"`
	Following    []string        `bson:"following" json:"following"`
	RefreshToken string          `bson:"refresh_token,omitempty" json:"-"`
	Preferences  UserPreferences `bson:"preferences" json:"preferences"`
	CreatedAt    time.Time       `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time       `bson:"updated_at" json:"updated_at"`
	LastLogin    *time.Time      `bson:"last_login,omitempty" json:"last_login,omitempty"`
}

// UserRole represents the role of a user in the system
type UserRole string

const (
	UserRoleUser   UserRole = "user"
	UserRoleEditor UserRole = "editor"
	UserRoleAuthor UserRole = "author"
	UserRoleAdmin  UserRole = "admin"
)

func DefaultRole() UserRole {
	return UserRoleUser
}

// UserStatus marks whether an account is active or deactivated (soft delete).
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

// SocialLinks holds optional profile links.
type SocialLinks struct {
	Twitter  *string `bson:"twitter,omitempty" json:"twitter,omitempty"`
	LinkedIn *string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	GitHub   *string `bson:"github,omitempty" json:"github,omitempty"`
	Website  *string `bson:"website,omitempty" json:"website,omitempty"`
}

// UserPreferences holds per-user notification settings.
type UserPreferences struct {
	EmailNotifications bool `bson:"email_notifications" json:"email_notifications"`
	MarketingUpdates   bool `bson:"marketing_updates" json:"marketing_updates"`
	TwoFactorAuth      bool `bson:"two_factor_auth" json:"two_factor_auth"`
}

// IsFollowing reports whether the user already follows targetID.
func (u *User) IsFollowing(targetID string) bool {
	for _, id := range u.Following {
		if id == targetID {
			return true
		}
	}
	return false
}

// HasFollower reports whether followerID is in the user's followers set.
// The followers side is the source of truth for duplicate-follow checks.
func (u *User) HasFollower(followerID string) bool {
	for _, id := range u.Followers {
		if id == followerID {
			return true
		}
	}
	return false
}
