package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort string

	// Database: sqlite (default, uses DatabasePath) or postgres/mysql (DatabaseURL)
	DatabaseType string
	DatabasePath string
	DatabaseURL  string

	SessionDuration time.Duration

	// Secret for signed report share links
	ShareTokenSecret string
	ShareTokenTTL    time.Duration

	// Google OAuth login
	GoogleClientID       string
	GoogleClientSecret   string
	OAuthRedirectBaseURL string

	// Report email delivery via SES (disabled when SESFromEmail is empty)
	AWSRegion    string
	SESFromEmail string
	SESFromName  string
	AppBaseURL   string
}

// Load reads configuration from the environment with sensible defaults.
// A .env file in the working directory is honored when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:           getEnv("PORT", "8080"),
		DatabaseType:         getEnv("DB_TYPE", "sqlite"),
		DatabasePath:         getEnv("DB_PATH", "./growlog.db"),
		DatabaseURL:          getEnv("DB_URL", ""),
		SessionDuration:      24 * time.Hour,
		ShareTokenSecret:     getEnv("SHARE_TOKEN_SECRET", "dev-share-secret"),
		ShareTokenTTL:        7 * 24 * time.Hour,
		GoogleClientID:       getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret:   getEnv("GOOGLE_CLIENT_SECRET", ""),
		OAuthRedirectBaseURL: getEnv("OAUTH_REDIRECT_BASE_URL", ""),
		AWSRegion:            getEnv("AWS_REGION", "eu-west-1"),
		SESFromEmail:         getEnv("SES_FROM_EMAIL", ""),
		SESFromName:          getEnv("SES_FROM_NAME", "growlog"),
		AppBaseURL:           getEnv("APP_BASE_URL", "http://localhost:8080"),
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
