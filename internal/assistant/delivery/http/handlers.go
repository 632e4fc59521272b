package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"travel-backoffice/internal/assistant"
	"travel-backoffice/pkg/response"
)

// Start godoc
// @Summary     Open an assistant session
// @Description Creates a booking assistant conversation owned by the caller.
// @Tags        Assistant
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} startResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/assistant/sessions [POST]
func (h *handler) Start(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Start(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Start: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, startResp{SessionID: out.SessionID})
}

// Session godoc
// @Summary     Get session state
// @Description Messages, task stack, travel options and busy flag of a session.
// @Tags        Assistant
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/assistant/sessions/{id} [GET]
func (h *handler) Session(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	state, err := h.uc.Session(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Session: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newSessionResp(state))
}

// Submit godoc
// @Summary     Send a message
// @Description Sends an operator message to the assistant. While the previous request is
// @Description unresolved the call fails with 409 and echoes the text back as data.input.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string    true "Session ID"
// @Param       body body submitReq true "Message"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Busy"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     502 {object} response.Resp "Assistant unavailable"
// @Router      /api/v1/assistant/sessions/{id}/messages [POST]
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processSubmitReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	state, err := h.uc.Submit(ctx, sc, req.toInput(c.Param("id")))
	if err != nil {
		h.l.Warnf(ctx, "uc.Submit: %v", err)
		var data map[string]any
		if errors.Is(err, assistant.ErrBusy) || errors.Is(err, assistant.ErrBackendUnavailable) {
			data = map[string]any{"input": req.Text}
		}
		response.Error(c, h.mapError(err), data)
		return
	}

	response.OK(c, newSessionResp(state))
}

// Refresh godoc
// @Summary     Poll task progress
// @Description Fetches the latest task stack from the assistant and merges it into the session.
// @Tags        Assistant
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     502 {object} response.Resp "Assistant unavailable"
// @Router      /api/v1/assistant/sessions/{id}/refresh [POST]
func (h *handler) Refresh(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	state, err := h.uc.Refresh(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Refresh: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newSessionResp(state))
}

// Clear godoc
// @Summary     Clear the task stack
// @Description Drops every pending task and unlocks input.
// @Tags        Assistant
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/assistant/sessions/{id}/stack [DELETE]
func (h *handler) Clear(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	state, err := h.uc.Clear(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Clear: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newSessionResp(state))
}

// Stream godoc
// @Summary     Stream session state
// @Description Upgrades to a websocket that receives the session state on every change.
// @Description Browsers pass the token as ?token=.
// @Tags        Assistant
// @Security    BearerAuth
// @Param       id path string true "Session ID"
// @Success     101
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/assistant/sessions/{id}/ws [GET]
func (h *handler) Stream(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	state, err := h.uc.Session(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Session: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	// The upgrader writes its own error response.
	if err := h.hub.serve(c.Writer, c.Request, state); err != nil {
		h.l.Warnf(ctx, "hub.serve: %v", err)
	}
}
