package middleware

import (
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/sangkips/residence-api/internal/presentation/http/dto/response"
	"github.com/sangkips/residence-api/pkg/logger"
)

// Recovery recovers from panics, logs the stack and returns a 500 without details.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error(c.Request.Context(), "panic recovered",
					"error", err,
					"stack", string(debug.Stack()),
				)
				response.InternalServerError(c, "Internal server error")
				c.Abort()
			}
		}()
		c.Next()
	}
}
