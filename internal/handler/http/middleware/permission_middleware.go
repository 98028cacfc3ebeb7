package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bereketsol/Inkwell/internal/domain/authz"
	"github.com/bereketsol/Inkwell/internal/handler/http/dto"
)

// RequirePermission gates a route on one permission token. It must run
// after AuthMiddleWare; without an authenticated role the check falls back
// to the default role and usually denies.
func RequirePermission(checker *authz.Checker, permission authz.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := RoleFromContext(c)
		if !checker.Allow(role, permission) {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
				Error: "you do not have permission to perform this action",
			})
			return
		}
		c.Next()
	}
}
