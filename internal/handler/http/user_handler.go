package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bereketsol/Inkwell/internal/domain/entity"
	"github.com/bereketsol/Inkwell/internal/handler/http/dto"
	"github.com/bereketsol/Inkwell/internal/handler/http/middleware"
	usecasecontract "github.com/bereketsol/Inkwell/internal/usecase/contract"
)

// UserHandlerInterface defines the methods for user handler to allow interface-based dependency injection (for testing/mocking)
type UserHandlerInterface interface {
	Register(*gin.Context)
	Login(*gin.Context)
	RefreshToken(*gin.Context)
	Logout(*gin.Context)
	GetUser(*gin.Context)
	ListUsers(*gin.Context)
	GetCurrentUser(*gin.Context)
	UpdateProfile(*gin.Context)
	ChangePassword(*gin.Context)
	ChangeRole(*gin.Context)
	DeactivateUser(*gin.Context)
	DeleteUser(*gin.Context)
	Follow(*gin.Context)
	Unfollow(*gin.Context)
	ListFollowers(*gin.Context)
	ListFollowing(*gin.Context)
}

// Ensure UserHandler implements UserHandlerInterface
var _ UserHandlerInterface = (*UserHandler)(nil)

type UserHandler struct {
	userUsecase usecasecontract.IUserUseCase
}

func NewUserHandler(userUsecase usecasecontract.IUserUseCase) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
	}
}

// Register handles account creation (signup)
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, err := h.userUsecase.Register(c.Request.Context(), req.Username, req.Email, req.Password, req.FullName)
	if err != nil {
		RespondError(c, err)
		return
	}

	SuccessHandler(c, http.StatusCreated, dto.ToUserResponse(*user))
}

// Login handles authentication by email or username
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, accessToken, refreshToken, err := h.userUsecase.Login(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		ErrorHandler(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	response := dto.LoginResponse{
		User:         dto.ToUserResponse(*user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}

	SuccessHandler(c, http.StatusOK, response)
}

// RefreshToken rotates a refresh token into a new token pair
func (h *UserHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	accessToken, refreshToken, err := h.userUsecase.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		RespondError(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, dto.TokenPairResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

// Logout invalidates the stored refresh token
func (h *UserHandler) Logout(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	if err := h.userUsecase.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		RespondError(c, err)
		return
	}

	MessageHandler(c, http.StatusOK, "logged out")
}

// GetUser handles retrieving a public profile by ID
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userUsecase.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}

// ListUsers handles the paginated user directory listing
func (h *UserHandler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}

	users, total, err := h.userUsecase.GetUsers(c.Request.Context(), page, pageSize)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.PaginatedUserResponse{
		Users:       dto.ToUserResponses(users),
		TotalCount:  total,
		CurrentPage: page,
	})
}

// GetCurrentUser handles retrieving the current authenticated user
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserID)
	user, err := h.userUsecase.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}

// UpdateProfile handles partial updates to the current user's profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	updates := map[string]interface{}{}
	if req.Username != nil {
		updates["username"] = *req.Username
	}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.AvatarURL != nil {
		updates["avatar_url"] = *req.AvatarURL
	}
	if req.SocialLinks != nil {
		updates["social_links"] = *req.SocialLinks
	}
	if req.Preferences != nil {
		updates["preferences"] = *req.Preferences
	}

	userID := c.GetString(middleware.CtxUserID)
	user, err := h.userUsecase.UpdateProfile(c.Request.Context(), userID, updates)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}

// ChangePassword verifies the current password before setting a new one
func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	userID := c.GetString(middleware.CtxUserID)
	if err := h.userUsecase.ChangePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "password changed")
}

// ChangeRole assigns a new role to a user. Admin only, enforced by the
// route's permission middleware.
func (h *UserHandler) ChangeRole(c *gin.Context) {
	var req dto.ChangeRoleRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, err := h.userUsecase.ChangeRole(c.Request.Context(), c.Param("id"), entity.UserRole(req.Role))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}

// DeactivateUser soft-deletes the current user's account
func (h *UserHandler) DeactivateUser(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserID)
	if err := h.userUsecase.DeactivateUser(c.Request.Context(), userID); err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "account deactivated")
}

// DeleteUser removes a user account. Admin only.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.userUsecase.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "user deleted")
}

// Follow adds the target user to the current user's following set
func (h *UserHandler) Follow(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserID)
	if err := h.userUsecase.Follow(c.Request.Context(), userID, c.Param("id")); err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "followed")
}

// Unfollow removes the target user from the current user's following set
func (h *UserHandler) Unfollow(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserID)
	if err := h.userUsecase.Unfollow(c.Request.Context(), userID, c.Param("id")); err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "unfollowed")
}

// ListFollowers returns the users following the given user
func (h *UserHandler) ListFollowers(c *gin.Context) {
	users, err := h.userUsecase.ListFollowers(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponses(users))
}

// ListFollowing returns the users the given user follows
func (h *UserHandler) ListFollowing(c *gin.Context) {
	users, err := h.userUsecase.ListFollowing(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponses(users))
}
