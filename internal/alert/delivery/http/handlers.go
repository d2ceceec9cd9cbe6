package http

import (
	"net/http"
	"strconv"

	"brandtracker-api/internal/alert"
	"brandtracker-api/pkg/response"

	"github.com/gin-gonic/gin"
)

var errMapping = response.ErrorMapping{
	alert.ErrAlertNotFound: http.StatusNotFound,
}

// List returns the most recent alerts, optionally filtered by brand and
// read state.
func (h *Handler) List(c *gin.Context) {
	ip := alert.ListInput{BrandID: c.Query("brandId")}

	if raw := c.Query("isRead"); raw != "" {
		isRead, err := strconv.ParseBool(raw)
		if err != nil {
			h.l.Warnf(c.Request.Context(), "internal.alert.delivery.http.List.ParseBool: %v", err)
			response.BadRequest(c, err)
			return
		}
		ip.IsRead = &isRead
	}

	alerts, err := h.uc.List(c.Request.Context(), ip)
	if err != nil {
		response.Error(c, err, errMapping)
		return
	}
	response.OK(c, alerts)
}

// MarkRead flags one alert as read.
func (h *Handler) MarkRead(c *gin.Context) {
	a, err := h.uc.MarkRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err, errMapping)
		return
	}
	response.OK(c, a)
}

// Delete removes one alert.
func (h *Handler) Delete(c *gin.Context) {
	if err := h.uc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err, errMapping)
		return
	}
	response.OK(c, gin.H{})
}
