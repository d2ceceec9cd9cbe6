package http

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the mention read routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	mentions := r.Group("/mentions")
	{
		mentions.GET("", h.List)
		mentions.GET("/stats/:brandId", h.Stats)
		mentions.GET("/trends/:brandId", h.Trends)
	}
}
