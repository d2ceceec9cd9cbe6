package middleware

import (
	"net/http"

	"brandtracker-api/pkg/log"
	"brandtracker-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// Recovery converts handler panics into a 500 response instead of killing
// the process.
func Recovery(logger log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				ctx := c.Request.Context()
				logger.Errorf(ctx, "Panic recovered: %v | Method: %s | Path: %s",
					err, c.Request.Method, c.Request.URL.Path)

				c.JSON(http.StatusInternalServerError, response.Resp{
					Success: false,
					Error:   "internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}
