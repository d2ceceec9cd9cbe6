package http

import (
	"net/http"

	"brandtracker-api/internal/brand"
	"brandtracker-api/pkg/response"

	"github.com/gin-gonic/gin"
)

var errMapping = response.ErrorMapping{
	brand.ErrBrandNotFound:   http.StatusNotFound,
	brand.ErrBrandExists:     http.StatusConflict,
	brand.ErrNameRequired:    http.StatusBadRequest,
	brand.ErrKeywordRequired: http.StatusBadRequest,
	brand.ErrInvalidSettings: http.StatusBadRequest,
}

// List returns all tracked brands, newest first.
func (h *Handler) List(c *gin.Context) {
	brands, err := h.uc.List(c.Request.Context())
	if err != nil {
		response.Error(c, err, errMapping)
		return
	}
	response.OK(c, brands)
}

// Detail returns one brand by id.
func (h *Handler) Detail(c *gin.Context) {
	b, err := h.uc.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err, errMapping)
		return
	}
	response.OK(c, b)
}

// Create registers a new brand to track.
func (h *Handler) Create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.brand.delivery.http.Create.ShouldBindJSON: %v", err)
		response.BadRequest(c, err)
		return
	}

	b, err := h.uc.Create(c.Request.Context(), req.toInput())
	if err != nil {
		response.Error(c, err, errMapping)
		return
	}
	response.Created(c, b)
}

// Update applies a partial update to a brand.
func (h *Handler) Update(c *gin.Context) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.brand.delivery.http.Update.ShouldBindJSON: %v", err)
		response.BadRequest(c, err)
		return
	}

	b, err := h.uc.Update(c.Request.Context(), req.toInput(c.Param("id")))
	if err != nil {
		response.Error(c, err, errMapping)
		return
	}
	response.OK(c, b)
}

// Delete removes a brand.
func (h *Handler) Delete(c *gin.Context) {
	if err := h.uc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err, errMapping)
		return
	}
	response.OK(c, gin.H{})
}
