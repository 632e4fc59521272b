package http

import (
	"travel-backoffice/internal/operator"
	"travel-backoffice/pkg/response"
)

// --- Request DTOs ---

type credentialsReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r credentialsReq) toRegisterInput() operator.RegisterInput {
	return operator.RegisterInput{Username: r.Username, Password: r.Password}
}

func (r credentialsReq) toLoginInput() operator.LoginInput {
	return operator.LoginInput{Username: r.Username, Password: r.Password}
}

// --- Response DTOs ---

type operatorResp struct {
	ID        string            `json:"id"`
	Username  string            `json:"username"`
	CreatedAt response.DateTime `json:"created_at"`
}

func newOperatorResp(op operator.Operator) operatorResp {
	return operatorResp{
		ID:        op.ID,
		Username:  op.Username,
		CreatedAt: response.DateTime(op.CreatedAt),
	}
}

type loginResp struct {
	Token    string       `json:"token"`
	Operator operatorResp `json:"operator"`
}
