package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bereketsol/Inkwell/internal/infrastructure/metrics"
)

// RequestMetrics counts every handled request by method and status.
func RequestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		metrics.IncRequest(c.Request.Method, strconv.Itoa(c.Writer.Status()))
	}
}
