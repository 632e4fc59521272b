package http

import (
	"github.com/gin-gonic/gin"
)

// processListReq binds the list bookings query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "booking.processListReq: %v", err)
		return req, errWrongQuery
	}
	return req, nil
}

// processCreateReq binds the create booking body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "booking.processCreateReq: %v", err)
		return req, errWrongBody
	}
	return req, nil
}
