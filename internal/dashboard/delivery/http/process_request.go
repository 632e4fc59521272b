package http

import (
	"github.com/gin-gonic/gin"
)

// processSummaryReq binds the month and year of a summary.
func (h *handler) processSummaryReq(c *gin.Context) (summaryReq, error) {
	var req summaryReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "dashboard.processSummaryReq: %v", err)
		return req, errWrongQuery
	}
	return req, nil
}

// processRevenueReq binds the year of a revenue chart.
func (h *handler) processRevenueReq(c *gin.Context) (revenueReq, error) {
	var req revenueReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "dashboard.processRevenueReq: %v", err)
		return req, errWrongQuery
	}
	return req, nil
}
