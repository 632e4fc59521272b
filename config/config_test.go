package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		HTTPServer: HTTPServerConfig{Port: 8080, Mode: "debug"},
		SQLite:     SQLiteConfig{Path: "./data/test.db"},
		JWT:        JWTConfig{Secret: "secret", TTL: time.Hour},
		Assistant:  AssistantConfig{SessionTTL: time.Minute, MaxSessions: 10, RateLimitPerMin: 5},
	}
}

func TestValidate(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg.HTTPServer.Port = 0
	cfg.JWT.Secret = ""
	cfg.Assistant.MaxSessions = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatalf("expected validation error")
	}
	for _, want := range []string{"http_server.port", "jwt.secret", "assistant.max_sessions"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected %q in %q", want, err.Error())
		}
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("HTTP_SERVER_PORT", "9090")
	t.Setenv("CHAT_BACKEND_URL", "http://chat.local")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.JWT.Secret != "from-env" {
		t.Errorf("expected jwt secret from env, got %q", cfg.JWT.Secret)
	}
	if cfg.HTTPServer.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.HTTPServer.Port)
	}
	if cfg.ChatBackend.URL != "http://chat.local" {
		t.Errorf("unexpected chat backend url %q", cfg.ChatBackend.URL)
	}
	if cfg.Assistant.SessionTTL != 30*time.Minute {
		t.Errorf("expected default session ttl, got %v", cfg.Assistant.SessionTTL)
	}
}
