package http

import (
	"net/http"

	"brandtracker-api/internal/mention"
	"brandtracker-api/pkg/paginator"
	"brandtracker-api/pkg/response"

	"github.com/gin-gonic/gin"
)

var errMapping = response.ErrorMapping{
	mention.ErrBrandRequired:   http.StatusBadRequest,
	mention.ErrMentionNotFound: http.StatusNotFound,
}

type listReq struct {
	BrandID   string `form:"brandId"`
	Source    string `form:"source"`
	Sentiment string `form:"sentiment"`
	Limit     int    `form:"limit"`
	Skip      int    `form:"skip"`
}

// List returns mentions matching the query filters, newest first.
func (h *Handler) List(c *gin.Context) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.mention.delivery.http.List.ShouldBindQuery: %v", err)
		response.BadRequest(c, err)
		return
	}

	out, err := h.uc.List(c.Request.Context(), mention.ListInput{
		BrandID:       req.BrandID,
		Source:        req.Source,
		Sentiment:     req.Sentiment,
		PaginateQuery: paginator.PaginateQuery{Limit: req.Limit, Skip: req.Skip},
	})
	if err != nil {
		response.Error(c, err, errMapping)
		return
	}
	response.OKPaginated(c, out.Mentions, out.Paginator)
}

// Stats returns aggregate mention counts for one brand.
func (h *Handler) Stats(c *gin.Context) {
	out, err := h.uc.Stats(c.Request.Context(), c.Param("brandId"))
	if err != nil {
		response.Error(c, err, errMapping)
		return
	}
	response.OK(c, out)
}

// Trends returns hourly sentiment buckets for one brand over 24h or 7d.
func (h *Handler) Trends(c *gin.Context) {
	period := c.DefaultQuery("period", "24h")

	buckets, err := h.uc.Trends(c.Request.Context(), c.Param("brandId"), period)
	if err != nil {
		response.Error(c, err, errMapping)
		return
	}
	response.OK(c, buckets)
}
