package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-backoffice/config/sqlite"
	"travel-backoffice/pkg/log"
	"travel-backoffice/pkg/scope"
)

func newTestServer(t *testing.T) *HTTPServer {
	t.Helper()
	db, err := sqlite.Connect(context.Background(), sqlite.Config{Path: filepath.Join(t.TempDir(), "api.db")})
	require.NoError(t, err)
	t.Cleanup(func() { sqlite.Disconnect(db) })

	jwtManager, err := scope.New("test-secret", time.Hour)
	require.NoError(t, err)

	srv, err := New(log.NewNop(), Config{
		Port:          8080,
		Mode:          "test",
		Environment:   "development",
		DB:            db,
		JWTManager:    jwtManager,
		SessionTTL:    time.Minute,
		MaxSessions:   10,
		SubmitsPerMin: 60,
	})
	require.NoError(t, err)
	return srv
}

func call(srv *HTTPServer, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := call(srv, http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"), path)
	}

	require.NoError(t, srv.db.Close())
	w := call(srv, http.MethodGet, "/ready", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestDomainRoutes(t *testing.T) {
	srv := newTestServer(t)

	w := call(srv, http.MethodGet, "/api/v1/bookings", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = call(srv, http.MethodPost, "/api/v1/auth/register", "", `{"username":"ada","password":"longenough"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = call(srv, http.MethodPost, "/api/v1/auth/login", "", `{"username":"ada","password":"longenough"}`)
	require.Equal(t, http.StatusOK, w.Code)
	token := extract(t, w.Body.String(), `"token":"`)

	for _, path := range []string{
		"/api/v1/auth/me",
		"/api/v1/bookings",
		"/api/v1/invoices",
		"/api/v1/payments",
		"/api/v1/dashboard/summary?month=3&year=2024",
		"/api/v1/dashboard/revenue?year=2024",
	} {
		w = call(srv, http.MethodGet, path, token, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	w = call(srv, http.MethodPost, "/api/v1/assistant/sessions", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	id := extract(t, w.Body.String(), `"session_id":"`)

	// No chat backend is configured: the message is refused and handed back.
	w = call(srv, http.MethodPost, "/api/v1/assistant/sessions/"+id+"/messages", token, `{"text":"Hotels in Rome"}`)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), `"input":"Hotels in Rome"`)
}

func extract(t *testing.T, body, prefix string) string {
	t.Helper()
	i := strings.Index(body, prefix)
	require.GreaterOrEqual(t, i, 0, body)
	rest := body[i+len(prefix):]
	return rest[:strings.Index(rest, `"`)]
}
