package http

import (
	"github.com/gin-gonic/gin"
)

// processListReq binds the list invoices query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "invoice.processListReq: %v", err)
		return req, errWrongQuery
	}
	return req, nil
}
