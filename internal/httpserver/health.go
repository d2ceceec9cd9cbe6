package httpserver

import (
	"net/http"

	"brandtracker-api/pkg/response"

	"github.com/gin-gonic/gin"
)

const serviceName = "brandtracker-api"

// healthCheck reports overall service health including its dependencies.
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.db.PingContext(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			Success: false,
			Error:   "database connection failed",
		})
		return
	}
	if err := srv.redis.Ping(ctx).Err(); err != nil {
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			Success: false,
			Error:   "redis connection failed",
		})
		return
	}

	response.OK(c, gin.H{
		"status":   "healthy",
		"service":  serviceName,
		"database": "connected",
		"redis":    "connected",
	})
}

// readyCheck reports whether the service can take traffic.
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	if err := srv.db.PingContext(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			Success: false,
			Error:   "database connection not available",
		})
		return
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"service": serviceName,
	})
}

// liveCheck reports process liveness only.
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": serviceName,
	})
}
