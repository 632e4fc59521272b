package http

import (
	"github.com/gin-gonic/gin"
)

// processCredentialsReq binds a username/password body.
func (h *handler) processCredentialsReq(c *gin.Context) (credentialsReq, error) {
	var req credentialsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "operator.processCredentialsReq: %v", err)
		return req, errWrongBody
	}
	return req, nil
}
