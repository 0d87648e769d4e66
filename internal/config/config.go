// Package config provides environment-driven configuration for the RFP manager.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds process configuration loaded from the environment. A .env
// file, when present, is loaded by the CLI entry point before this runs.
type Config struct {
	Port         int    // HTTP listen port
	DatabaseURL  string // PostgreSQL connection URL
	GeminiAPIKey string // Text-generation service credential

	// SMTP transport
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
}

// LoadFromEnv reads configuration from environment variables. Missing values
// are left at their zero value; required fields are checked by the callers
// that need them.
func LoadFromEnv() *Config {
	return &Config{
		Port:         envInt("PORT", 8080),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     envInt("SMTP_PORT", 0),
		SMTPUsername: os.Getenv("SMTP_USER"),
		SMTPPassword: os.Getenv("SMTP_PASS"),
		SMTPFrom:     os.Getenv("SMTP_FROM"),
	}
}

// RequireDatabase returns an error when no database URL is configured.
func (c *Config) RequireDatabase() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}
	return nil
}

// RequireSMTP returns an error when no SMTP host is configured.
func (c *Config) RequireSMTP() error {
	if c.SMTPHost == "" {
		return fmt.Errorf("SMTP_HOST environment variable is required")
	}
	return nil
}

// envInt reads an integer environment variable, falling back to def when the
// variable is unset or malformed.
func envInt(key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return value
}
