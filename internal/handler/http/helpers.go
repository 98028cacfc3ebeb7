package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bereketsol/Inkwell/internal/domain/apperr"
	"github.com/bereketsol/Inkwell/internal/handler/http/dto"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// RespondError maps a usecase error to an HTTP status by its kind. Internal
// errors are not echoed back to the client.
func RespondError(c *gin.Context, err error) {
	kind := apperr.KindOf(err)
	status := statusForKind(kind)
	msg := apperr.MessageOf(err)
	if kind == apperr.Internal {
		msg = "internal server error"
	}
	ErrorHandler(c, status, msg)
}

func statusForKind(kind apperr.Kind) int {
	switch kind {
	case apperr.NotFound:
		return http.StatusNotFound
	case apperr.InvalidOperation:
		return http.StatusBadRequest
	case apperr.Conflict:
		return http.StatusConflict
	case apperr.Unauthorized:
		return http.StatusUnauthorized
	case apperr.Forbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
