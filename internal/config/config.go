// Package config loads the application configuration from environment
// variables. Every setting has a development-friendly default so the
// server starts with no environment at all; deployments override via env.
package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root configuration of the service.
type Config struct {
	HTTP HTTPConfig
	Auth AuthConfig
	News NewsConfig
	S3   S3Config
	CORS CORSConfig
	Log  LogConfig
}

// HTTPConfig holds the network settings of the HTTP server.
type HTTPConfig struct {
	Addr         string `env:"HTTP_ADDR" env-default:":8080"`
	MaxBodyBytes int64  `env:"HTTP_MAX_BODY_BYTES" env-default:"10485760"`
}

// AuthConfig holds the single-admin identity and token settings.
// There is exactly one configured admin; there is no user store.
type AuthConfig struct {
	AdminUser     string        `env:"ADMIN_USER" env-default:"admin"`
	AdminPassword string        `env:"ADMIN_PASSWORD" env-default:"password"`
	JWTSecret     string        `env:"JWT_SECRET" env-default:"newsdesk-dev-secret-change-me"`
	TokenTTL      time.Duration `env:"TOKEN_TTL" env-default:"168h"`
}

// NewsConfig holds the durable news store settings.
type NewsConfig struct {
	FilePath string `env:"NEWS_FILE" env-default:"data/news.json"`
}

// S3Config holds the blob store settings for image uploads.
// An empty endpoint leaves the upload relay unconfigured; the /upload
// endpoint then reports a relay failure instead of refusing to start.
type S3Config struct {
	Endpoint      string `env:"S3_ENDPOINT" env-default:""`
	AccessKey     string `env:"S3_ACCESS_KEY" env-default:""`
	SecretKey     string `env:"S3_SECRET_KEY" env-default:""`
	Bucket        string `env:"S3_BUCKET" env-default:"newsdesk"`
	PublicBaseURL string `env:"S3_PUBLIC_BASE_URL" env-default:""`
}

// CORSConfig holds the CORS policy. The defaults match the public API
// posture: any origin may read the news list and post with a token.
type CORSConfig struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"*"`
	AllowedMethods []string `env:"CORS_ALLOWED_METHODS" env-separator:"," env-default:"GET,POST,OPTIONS"`
	AllowedHeaders []string `env:"CORS_ALLOWED_HEADERS" env-separator:"," env-default:"Content-Type,Authorization"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `env:"LOG_LEVEL" env-default:"info"`
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read config from env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MustLoad is Load with a panic on error, for use in main.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func (c *Config) validate() error {
	if c.Auth.AdminUser == "" || c.Auth.AdminPassword == "" {
		return fmt.Errorf("admin credentials must not be empty")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT secret must not be empty")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("token TTL must be positive")
	}
	if c.News.FilePath == "" {
		return fmt.Errorf("news file path must not be empty")
	}
	return nil
}
