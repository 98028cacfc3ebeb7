package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/bereketsol/Inkwell/internal/domain/apperr"
	"github.com/bereketsol/Inkwell/internal/domain/contract"
	"github.com/bereketsol/Inkwell/internal/domain/entity"
	usecasecontract "github.com/bereketsol/Inkwell/internal/usecase/contract"
)

// UserUsecase implements account management and the social graph.
type UserUsecase struct {
	userRepo      contract.IUserRepository
	hasher        contract.IHasher
	jwtService    JWTService
	logger        usecasecontract.IAppLogger
	config        usecasecontract.IConfigProvider
	validator     usecasecontract.IValidator
	uuidGenerator contract.IUUIDGenerator
}

// NewUserUsecase creates a new UserUsecase instance.
func NewUserUsecase(
	userRepo contract.IUserRepository,
	hasher contract.IHasher,
	jwtService JWTService,
	logger usecasecontract.IAppLogger,
	cfg usecasecontract.IConfigProvider,
	validator usecasecontract.IValidator,
	uuidGenerator contract.IUUIDGenerator,
) *UserUsecase {
	return &UserUsecase{
		userRepo:      userRepo,
		hasher:        hasher,
		jwtService:    jwtService,
		logger:        logger,
		config:        cfg,
		validator:     validator,
		uuidGenerator: uuidGenerator,
	}
}

// check if UserUsecase implements the IUserUseCase
var _ usecasecontract.IUserUseCase = (*UserUsecase)(nil)

// Register handles user registration. Usernames are stored lowercase and
// must be unique, as must emails.
func (uc *UserUsecase) Register(ctx context.Context, username, email, password, fullName string) (*entity.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	email = strings.ToLower(strings.TrimSpace(email))

	if err := uc.validator.ValidateUsername(username); err != nil {
		return nil, apperr.Wrap(apperr.InvalidOperation, "invalid username", err)
	}
	if err := uc.validator.ValidateEmail(email); err != nil {
		return nil, apperr.Wrap(apperr.InvalidOperation, "invalid email format", err)
	}
	if err := uc.validator.ValidatePasswordStrength(password); err != nil {
		return nil, apperr.Wrap(apperr.InvalidOperation, "weak password", err)
	}

	existing, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil && !apperr.IsKind(err, apperr.NotFound) {
		uc.logger.Errorf("failed to check for existing user by email: %v", err)
		return nil, err
	}
	if existing != nil {
		return nil, apperr.New(apperr.Conflict, "email already registered")
	}

	existing, err = uc.userRepo.GetUserByUsername(ctx, username)
	if err != nil && !apperr.IsKind(err, apperr.NotFound) {
		uc.logger.Errorf("failed to check for existing user by username: %v", err)
		return nil, err
	}
	if existing != nil {
		return nil, apperr.New(apperr.Conflict, "username already taken")
	}

	hashedPassword, err := uc.hasher.HashPassword(password)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		return nil, apperr.Wrap(apperr.Internal, "failed to process password", err)
	}

	user := &entity.User{
		ID:           uc.uuidGenerator.NewUUID(),
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		FullName:     strings.TrimSpace(fullName),
		Role:         entity.DefaultRole(),
		Status:       entity.UserStatusActive,
		Followers:    []string{},
		Following:    []string{},
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		uc.logger.Errorf("failed to create user: %v", err)
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and issues an access/refresh token pair. The
// refresh token's digest is stored on the user document.
func (uc *UserUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, string, error) {
	var user *entity.User
	var err error

	// Accept either an email address or a username in the email field.
	if uc.validator.ValidateEmail(email) == nil {
		user, err = uc.userRepo.GetUserByEmail(ctx, strings.ToLower(email))
	} else {
		user, err = uc.userRepo.GetUserByUsername(ctx, strings.ToLower(email))
	}
	if err != nil {
		if apperr.IsKind(err, apperr.NotFound) {
			return nil, "", "", apperr.New(apperr.Unauthorized, "invalid credentials")
		}
		uc.logger.Errorf("failed to retrieve user for login: %v", err)
		return nil, "", "", err
	}

	if user.Status != entity.UserStatusActive {
		return nil, "", "", apperr.New(apperr.Unauthorized, "account is deactivated")
	}
	if err := uc.hasher.ComparePasswordHash(password, user.PasswordHash); err != nil {
		return nil, "", "", apperr.New(apperr.Unauthorized, "invalid credentials")
	}

	accessToken, err := uc.jwtService.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		uc.logger.Errorf("failed to generate access token: %v", err)
		return nil, "", "", apperr.Wrap(apperr.Internal, "failed to generate token", err)
	}
	refreshToken, err := uc.jwtService.GenerateRefreshToken(user.ID)
	if err != nil {
		uc.logger.Errorf("failed to generate refresh token: %v", err)
		return nil, "", "", apperr.Wrap(apperr.Internal, "failed to generate token", err)
	}

	now := time.Now()
	updated, err := uc.userRepo.UpdateUser(ctx, user.ID, map[string]interface{}{
		"refresh_token": uc.hasher.HashString(refreshToken),
		"last_login":    now,
	})
	if err != nil {
		uc.logger.Errorf("failed to store refresh token for user %s: %v", user.ID, err)
		return nil, "", "", err
	}
	return updated, accessToken, refreshToken, nil
}

// Authenticate resolves an access token to the user it belongs to.
func (uc *UserUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	claims, err := uc.jwtService.ParseAccessToken(accessToken)
	if err != nil {
		return nil, apperr.Wrap(apperr.Unauthorized, "invalid access token", err)
	}
	user, err := uc.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user.Status != entity.UserStatusActive {
		return nil, apperr.New(apperr.Unauthorized, "account is deactivated")
	}
	return user, nil
}

// RefreshToken rotates the token pair. The presented refresh token must
// match the digest stored on the user document.
func (uc *UserUsecase) RefreshToken(ctx context.Context, refreshToken string) (string, string, error) {
	claims, err := uc.jwtService.ParseRefreshToken(refreshToken)
	if err != nil {
		return "", "", apperr.Wrap(apperr.Unauthorized, "invalid refresh token", err)
	}
	user, err := uc.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if apperr.IsKind(err, apperr.NotFound) {
			return "", "", apperr.New(apperr.Unauthorized, "invalid refresh token")
		}
		return "", "", err
	}
	if user.RefreshToken == "" || !uc.hasher.CheckHash(refreshToken, user.RefreshToken) {
		return "", "", apperr.New(apperr.Unauthorized, "refresh token revoked")
	}

	newAccess, err := uc.jwtService.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return "", "", apperr.Wrap(apperr.Internal, "failed to generate token", err)
	}
	newRefresh, err := uc.jwtService.GenerateRefreshToken(user.ID)
	if err != nil {
		return "", "", apperr.Wrap(apperr.Internal, "failed to generate token", err)
	}
	if _, err := uc.userRepo.UpdateUser(ctx, user.ID, map[string]interface{}{
		"refresh_token": uc.hasher.HashString(newRefresh),
	}); err != nil {
		return "", "", err
	}
	return newAccess, newRefresh, nil
}

// Logout invalidates the user's stored refresh token. Presenting an
// already-invalidated token is a no-op.
func (uc *UserUsecase) Logout(ctx context.Context, refreshToken string) error {
	claims, err := uc.jwtService.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil
	}
	_, err = uc.userRepo.UpdateUser(ctx, claims.UserID, map[string]interface{}{
		"refresh_token": "",
	})
	if err != nil && !apperr.IsKind(err, apperr.NotFound) {
		return err
	}
	return nil
}

// GetUserByID retrieves a user profile.
func (uc *UserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	return uc.userRepo.GetUserByID(ctx, userID)
}

// GetUsers returns a page of the full user directory.
func (uc *UserUsecase) GetUsers(ctx context.Context, page, pageSize int) ([]*entity.User, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	users, total, err := uc.userRepo.GetUsers(ctx, page, pageSize)
	if err != nil {
		uc.logger.Errorf("failed to list users: %v", err)
		return nil, 0, err
	}
	return users, int(total), nil
}

// allowed profile fields for UpdateProfile
var allowedProfileFields = map[string]bool{
	"full_name":    true,
	"bio":          true,
	"username":     true,
	"email":        true,
	"avatar_url":   true,
	"social_links": true,
	"preferences":  true,
}

// UpdateProfile applies a partial update to the caller's profile. Only
// whitelisted fields go through; username changes re-check uniqueness.
func (uc *UserUsecase) UpdateProfile(ctx context.Context, userID string, updates map[string]interface{}) (*entity.User, error) {
	filtered := make(map[string]interface{}, len(updates))
	for key, value := range updates {
		if !allowedProfileFields[key] {
			continue
		}
		if s, ok := value.(string); ok {
			if strings.TrimSpace(s) == "" {
				continue
			}
			value = strings.TrimSpace(s)
		}
		filtered[key] = value
	}
	if len(filtered) == 0 {
		return nil, apperr.New(apperr.InvalidOperation, "at least one valid field is required to update")
	}

	if username, ok := filtered["username"].(string); ok {
		username = strings.ToLower(username)
		filtered["username"] = username
		existing, err := uc.userRepo.GetUserByUsername(ctx, username)
		if err != nil && !apperr.IsKind(err, apperr.NotFound) {
			return nil, err
		}
		if existing != nil && existing.ID != userID {
			return nil, apperr.New(apperr.Conflict, "username already taken")
		}
	}
	filtered["updated_at"] = time.Now()

	return uc.userRepo.UpdateUser(ctx, userID, filtered)
}

// ChangePassword verifies the current password before setting a new one.
func (uc *UserUsecase) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := uc.hasher.ComparePasswordHash(currentPassword, user.PasswordHash); err != nil {
		return apperr.New(apperr.Unauthorized, "current password is incorrect")
	}
	if err := uc.validator.ValidatePasswordStrength(newPassword); err != nil {
		return apperr.Wrap(apperr.InvalidOperation, "weak password", err)
	}
	hashed, err := uc.hasher.HashPassword(newPassword)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		return apperr.Wrap(apperr.Internal, "failed to process password", err)
	}
	return uc.userRepo.UpdateUserPassword(ctx, userID, hashed)
}

// ChangeRole assigns a new role to a user. Admin only, enforced at the
// route level.
func (uc *UserUsecase) ChangeRole(ctx context.Context, userID string, role entity.UserRole) (*entity.User, error) {
	switch role {
	case entity.UserRoleUser, entity.UserRoleEditor, entity.UserRoleAuthor, entity.UserRoleAdmin:
	default:
		return nil, apperr.New(apperr.InvalidOperation, "unknown role")
	}
	return uc.userRepo.UpdateUser(ctx, userID, map[string]interface{}{
		"role":       role,
		"updated_at": time.Now(),
	})
}

// DeactivateUser soft-deletes an account by flipping its status.
func (uc *UserUsecase) DeactivateUser(ctx context.Context, userID string) error {
	_, err := uc.userRepo.UpdateUser(ctx, userID, map[string]interface{}{
		"status":        entity.UserStatusInactive,
		"refresh_token": "",
		"updated_at":    time.Now(),
	})
	return err
}

// DeleteUser removes the account document entirely.
func (uc *UserUsecase) DeleteUser(ctx context.Context, userID string) error {
	return uc.userRepo.DeleteUser(ctx, userID)
}

// Follow adds userID to targetUserID's followers and targetUserID to
// userID's following. The two sides are denormalized on both user
// documents, so the update is issued in a fixed order, followers side
// first; the underlying set-adds are idempotent, so a retry after a
// partial failure converges rather than diverging.
func (uc *UserUsecase) Follow(ctx context.Context, userID, targetUserID string) error {
	if userID == targetUserID {
		return apperr.New(apperr.InvalidOperation, "you cannot follow yourself")
	}

	if _, err := uc.userRepo.GetUserByID(ctx, userID); err != nil {
		return err
	}
	target, err := uc.userRepo.GetUserByID(ctx, targetUserID)
	if err != nil {
		return err
	}

	// The target's followers set is the source of truth for duplicates.
	if target.HasFollower(userID) {
		return apperr.New(apperr.Conflict, "already following this user")
	}

	if err := uc.userRepo.AddFollower(ctx, targetUserID, userID); err != nil {
		uc.logger.Errorf("failed to add follower %s to %s: %v", userID, targetUserID, err)
		return err
	}
	if err := uc.userRepo.AddFollowing(ctx, userID, targetUserID); err != nil {
		uc.logger.Errorf("failed to add following %s to %s: %v", targetUserID, userID, err)
		return err
	}
	return nil
}

// Unfollow removes the relation from both sides in the same fixed order
// as Follow. Unfollowing a user you do not follow is a success no-op.
func (uc *UserUsecase) Unfollow(ctx context.Context, userID, targetUserID string) error {
	if userID == targetUserID {
		return apperr.New(apperr.InvalidOperation, "you cannot unfollow yourself")
	}

	if _, err := uc.userRepo.GetUserByID(ctx, userID); err != nil {
		return err
	}
	if _, err := uc.userRepo.GetUserByID(ctx, targetUserID); err != nil {
		return err
	}

	if err := uc.userRepo.RemoveFollower(ctx, targetUserID, userID); err != nil {
		uc.logger.Errorf("failed to remove follower %s from %s: %v", userID, targetUserID, err)
		return err
	}
	if err := uc.userRepo.RemoveFollowing(ctx, userID, targetUserID); err != nil {
		uc.logger.Errorf("failed to remove following %s from %s: %v", targetUserID, userID, err)
		return err
	}
	return nil
}

// ListFollowers resolves the user's followers set to user records.
func (uc *UserUsecase) ListFollowers(ctx context.Context, userID string) ([]*entity.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.userRepo.GetUsersByIDs(ctx, user.Followers)
}

// ListFollowing resolves the user's following set to user records.
func (uc *UserUsecase) ListFollowing(ctx context.Context, userID string) ([]*entity.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.userRepo.GetUsersByIDs(ctx, user.Following)
}
