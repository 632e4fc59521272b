package http

import (
	"github.com/gin-gonic/gin"

	"travel-backoffice/internal/model"
	"travel-backoffice/pkg/response"
)

// Register godoc
// @Summary     Register the first operator
// @Description Only the first operator may self-register.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body credentialsReq true "Credentials"
// @Success     200 {object} operatorResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Registration closed"
// @Router      /api/v1/auth/register [POST]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCredentialsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Register(ctx, req.toRegisterInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Register: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newOperatorResp(output.Operator))
}

// Login godoc
// @Summary     Log in
// @Description Exchanges credentials for a bearer token.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body credentialsReq true "Credentials"
// @Success     200 {object} loginResp
// @Failure     401 {object} response.Resp "Invalid credentials"
// @Router      /api/v1/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCredentialsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Login(ctx, req.toLoginInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Login: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, loginResp{
		Token:    output.Token,
		Operator: newOperatorResp(output.Operator),
	})
}

// Me godoc
// @Summary     Current operator
// @Tags        Auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} operatorResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/auth/me [GET]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := model.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	op, err := h.uc.Me(ctx, sc)
	if err != nil {
		h.l.Warnf(ctx, "uc.Me: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newOperatorResp(op))
}
