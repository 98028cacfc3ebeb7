package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bereketsol/Inkwell/internal/domain/entity"
	"github.com/bereketsol/Inkwell/internal/handler/http/dto"
	"github.com/bereketsol/Inkwell/internal/usecase"
	usecasecontract "github.com/bereketsol/Inkwell/internal/usecase/contract"
)

// Context keys set by AuthMiddleWare for downstream handlers.
const (
	CtxUserID   = "userID"
	CtxUserRole = "userRole"
)

// AuthMiddleWare validates the bearer token and loads the account behind
// it. Deactivated accounts are rejected here, so a valid token alone is
// not enough to pass.
func AuthMiddleWare(jwtService usecase.JWTService, userUsecase usecasecontract.IUserUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, "missing authorization header")
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c, "invalid authorization header")
			return
		}

		user, err := userUsecase.Authenticate(c.Request.Context(), parts[1])
		if err != nil {
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		c.Set(CtxUserID, user.ID)
		c.Set(CtxUserRole, user.Role)
		c.Next()
	}
}

// RoleFromContext returns the authenticated role, defaulting to the least
// privileged one when the middleware did not run.
func RoleFromContext(c *gin.Context) entity.UserRole {
	v, ok := c.Get(CtxUserRole)
	if !ok {
		return entity.DefaultRole()
	}
	role, ok := v.(entity.UserRole)
	if !ok {
		return entity.DefaultRole()
	}
	return role
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: message})
}
