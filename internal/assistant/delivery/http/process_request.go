package http

import (
	"github.com/gin-gonic/gin"

	"travel-backoffice/internal/model"
	pkgErrors "travel-backoffice/pkg/errors"
)

// processScope returns the operator scope set by the auth middleware.
func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := model.GetScopeFromContext(c.Request.Context())
	if !ok {
		return model.Scope{}, pkgErrors.ErrUnauthorized
	}
	return sc, nil
}

// processSubmitReq binds the message body of a submission.
func (h *handler) processSubmitReq(c *gin.Context) (model.Scope, submitReq, error) {
	var req submitReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "assistant.processSubmitReq: %v", err)
		return sc, req, errWrongBody
	}
	return sc, req, nil
}
