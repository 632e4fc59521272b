package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-backoffice/internal/model"
	"travel-backoffice/internal/operator"
	"travel-backoffice/pkg/log"
)

type fakeUseCase struct {
	registerErr error
	loginErr    error
}

func (f *fakeUseCase) Register(_ context.Context, in operator.RegisterInput) (operator.RegisterOutput, error) {
	return operator.RegisterOutput{Operator: operator.Operator{ID: "op-1", Username: in.Username}}, f.registerErr
}

func (f *fakeUseCase) Login(_ context.Context, in operator.LoginInput) (operator.LoginOutput, error) {
	return operator.LoginOutput{Token: "tok", Operator: operator.Operator{ID: "op-1", Username: in.Username}}, f.loginErr
}

func (f *fakeUseCase) Me(_ context.Context, sc model.Scope) (operator.Operator, error) {
	return operator.Operator{ID: sc.OperatorID, Username: sc.Username}, nil
}

func newTestRouter(uc operator.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(log.NewNop(), uc)
	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	r.GET("/auth/me", func(c *gin.Context) {
		if c.GetHeader("X-Test-Operator") != "" {
			ctx := model.SetScopeToContext(c.Request.Context(), model.Scope{OperatorID: c.GetHeader("X-Test-Operator"), Username: "ada"})
			c.Request = c.Request.WithContext(ctx)
		}
	}, h.Me)
	return r
}

func post(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegister(t *testing.T) {
	w := post(newTestRouter(&fakeUseCase{}), "/auth/register", `{"username":"ada","password":"longenough"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = post(newTestRouter(&fakeUseCase{registerErr: operator.ErrRegistrationClosed}), "/auth/register", `{"username":"bob","password":"longenough"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = post(newTestRouter(&fakeUseCase{}), "/auth/register", `{"username":"ada"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin(t *testing.T) {
	w := post(newTestRouter(&fakeUseCase{}), "/auth/login", `{"username":"ada","password":"longenough"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "tok", body.Data.Token)

	w = post(newTestRouter(&fakeUseCase{loginErr: operator.ErrInvalidCredentials}), "/auth/login", `{"username":"ada","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMe(t *testing.T) {
	r := newTestRouter(&fakeUseCase{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("X-Test-Operator", "op-1")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"ada"`)
}
