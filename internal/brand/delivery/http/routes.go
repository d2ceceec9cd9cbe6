package http

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the brand CRUD routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	brands := r.Group("/brands")
	{
		brands.GET("", h.List)
		brands.GET("/:id", h.Detail)
		brands.POST("", h.Create)
		brands.PUT("/:id", h.Update)
		brands.DELETE("/:id", h.Delete)
	}
}
