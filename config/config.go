package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Infrastructure
	SQLite   SQLiteConfig
	RabbitMQ RabbitMQConfig

	// Auth
	JWT JWTConfig

	// Booking assistant
	ChatBackend ChatBackendConfig
	Assistant   AssistantConfig

	// Integrations
	GoogleCalendar GoogleCalendarConfig

	Dashboard DashboardConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type SQLiteConfig struct {
	Path string
}

type RabbitMQConfig struct {
	URL      string
	Exchange string
	Queue    string
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

type ChatBackendConfig struct {
	URL     string
	APIKey  string
	Timeout time.Duration
}

type AssistantConfig struct {
	SessionTTL      time.Duration
	MaxSessions     int
	RateLimitPerMin int
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

type DashboardConfig struct {
	CacheTTL time.Duration
}

// Load loads configuration using Viper.
// A .env file in the working directory is applied to the environment first.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	// Missing .env is the normal case outside local development.
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Infrastructure
	cfg.SQLite.Path = viper.GetString("sqlite.path")
	cfg.RabbitMQ.URL = viper.GetString("rabbitmq.url")
	cfg.RabbitMQ.Exchange = viper.GetString("rabbitmq.exchange")
	cfg.RabbitMQ.Queue = viper.GetString("rabbitmq.queue")
	if amqpURL := viper.GetString("amqp_url"); amqpURL != "" {
		cfg.RabbitMQ.URL = amqpURL
	}

	// Auth
	cfg.JWT.Secret = viper.GetString("jwt.secret")
	cfg.JWT.TTL = viper.GetDuration("jwt.ttl")
	if secret := viper.GetString("jwt_secret"); secret != "" {
		cfg.JWT.Secret = secret
	}

	// Booking assistant
	cfg.ChatBackend.URL = viper.GetString("chat_backend.url")
	cfg.ChatBackend.APIKey = viper.GetString("chat_backend.api_key")
	cfg.ChatBackend.Timeout = viper.GetDuration("chat_backend.timeout")
	if key := viper.GetString("chat_backend_api_key"); key != "" {
		cfg.ChatBackend.APIKey = key
	}
	cfg.Assistant.SessionTTL = viper.GetDuration("assistant.session_ttl")
	cfg.Assistant.MaxSessions = viper.GetInt("assistant.max_sessions")
	cfg.Assistant.RateLimitPerMin = viper.GetInt("assistant.rate_limit_per_min")

	// Integrations
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	cfg.Dashboard.CacheTTL = viper.GetDuration("dashboard.cache_ttl")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	if c.HTTPServer.Port <= 0 || c.HTTPServer.Port > 65535 {
		errs = append(errs, fmt.Errorf("http_server.port %d out of range", c.HTTPServer.Port))
	}
	if c.SQLite.Path == "" {
		errs = append(errs, errors.New("sqlite.path is required"))
	}
	if c.JWT.Secret == "" {
		errs = append(errs, errors.New("jwt.secret is required"))
	}
	if c.Assistant.MaxSessions <= 0 {
		errs = append(errs, errors.New("assistant.max_sessions must be positive"))
	}
	if c.Assistant.RateLimitPerMin <= 0 {
		errs = append(errs, errors.New("assistant.rate_limit_per_min must be positive"))
	}
	return errors.Join(errs...)
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("sqlite.path", "./data/backoffice.db")
	viper.SetDefault("rabbitmq.exchange", "reservations")
	viper.SetDefault("rabbitmq.queue", "backoffice.bookings")

	viper.SetDefault("jwt.ttl", "24h")

	viper.SetDefault("chat_backend.timeout", "30s")
	viper.SetDefault("assistant.session_ttl", "30m")
	viper.SetDefault("assistant.max_sessions", 1000)
	viper.SetDefault("assistant.rate_limit_per_min", 20)

	viper.SetDefault("google_calendar.calendar_id", "primary")
	viper.SetDefault("dashboard.cache_ttl", "1m")
}
