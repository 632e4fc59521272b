package http

import (
	"github.com/gin-gonic/gin"

	"travel-backoffice/pkg/response"
)

// Summary godoc
// @Summary     Monthly summary
// @Description Nights and totals per hotel for one month, plus invoice and payment counts.
// @Tags        Dashboard
// @Produce     json
// @Security    BearerAuth
// @Param       month query int true "Month (1-12)"
// @Param       year  query int true "Year"
// @Success     200 {object} summaryResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/dashboard/summary [GET]
func (h *handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSummaryReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Summary(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Summary: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSummaryResp(output))
}

// Revenue godoc
// @Summary     Yearly revenue
// @Description Grand total billed in each month of a year.
// @Tags        Dashboard
// @Produce     json
// @Security    BearerAuth
// @Param       year query int true "Year"
// @Success     200 {object} revenueResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/dashboard/revenue [GET]
func (h *handler) Revenue(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRevenueReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Revenue(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Revenue: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newRevenueResp(output))
}
