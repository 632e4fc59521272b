package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"travel-backoffice/config"
	"travel-backoffice/config/sqlite"
	_ "travel-backoffice/docs" // Swagger docs
	"travel-backoffice/internal/httpserver"
	"travel-backoffice/pkg/chatbackend"
	"travel-backoffice/pkg/gcalendar"
	"travel-backoffice/pkg/log"
	"travel-backoffice/pkg/scope"
)

// @title                      Travel Back-office API
// @description                Bookings, invoices, payments, monthly stay reports and the booking assistant.
// @version                    1
// @host                       localhost:8080
// @schemes                    http
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting travel back-office API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Infrastructure
	db, err := sqlite.Connect(ctx, sqlite.Config{Path: cfg.SQLite.Path})
	if err != nil {
		logger.Error(ctx, "Failed to open SQLite database: ", err)
		return
	}
	defer sqlite.Disconnect(db)
	logger.Infof(ctx, "SQLite database ready at %s", cfg.SQLite.Path)

	jwtManager, err := scope.New(cfg.JWT.Secret, cfg.JWT.TTL)
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}

	srvCfg := httpserver.Config{
		Port:              cfg.HTTPServer.Port,
		Mode:              cfg.HTTPServer.Mode,
		Environment:       cfg.Environment.Name,
		DB:                db,
		JWTManager:        jwtManager,
		SessionTTL:        cfg.Assistant.SessionTTL,
		MaxSessions:       cfg.Assistant.MaxSessions,
		SubmitsPerMin:     cfg.Assistant.RateLimitPerMin,
		DashboardCacheTTL: cfg.Dashboard.CacheTTL,
	}

	// 4. Chat backend (optional)
	if cfg.ChatBackend.URL != "" {
		chatClient, chatErr := chatbackend.New(chatbackend.Config{
			URL:     cfg.ChatBackend.URL,
			APIKey:  cfg.ChatBackend.APIKey,
			Timeout: cfg.ChatBackend.Timeout,
		})
		if chatErr != nil {
			logger.Warnf(ctx, "Chat backend not available (optional): %v", chatErr)
		} else {
			srvCfg.ChatBackend = chatClient
			logger.Infof(ctx, "Chat backend: %s", cfg.ChatBackend.URL)
		}
	} else {
		logger.Warn(ctx, "CHAT_BACKEND_URL is empty, the booking assistant is disabled")
	}

	// 5. Google Calendar (optional)
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.CalendarID)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "Run `go run ./cmd/gcal-auth` to generate token.json")
		} else {
			srvCfg.Calendar = calendarClient
			logger.Infof(ctx, "Google Calendar mirroring stays into %q", cfg.GoogleCalendar.CalendarID)
		}
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, srvCfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(context.Background(), "Server stopped gracefully")
}
