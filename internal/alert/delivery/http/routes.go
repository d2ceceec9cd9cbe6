package http

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the alert routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	alerts := r.Group("/alerts")
	{
		alerts.GET("", h.List)
		alerts.PATCH("/:id/read", h.MarkRead)
		alerts.DELETE("/:id", h.Delete)
	}
}
