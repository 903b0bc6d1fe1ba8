package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration, resolved once at startup.
type Config struct {
	Server ServerConfig
	OpenAI OpenAIConfig

	// ProductionMode is true when the platform set PORT or
	// RAILWAY_ENVIRONMENT. It only changes the startup banner.
	ProductionMode bool
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// OpenAIConfig holds completion client configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration

	// KeySet mirrors the environment check reported by the root endpoint.
	// It only considers OPENAI_KEY and OPENAI_API_KEY, not OPENAI_TOKEN.
	KeySet bool
}

// apiKeyEnvVars lists the accepted credential variable names, tried in order.
var apiKeyEnvVars = []string{"OPENAI_KEY", "OPENAI_API_KEY", "OPENAI_TOKEN"}

// Load reads configuration from the environment. A .env file is loaded first
// if it exists, which is useful for local development; in production env vars
// are set by the platform.
//
// A missing OpenAI key is not an error: the service starts in degraded mode
// and reports the missing credential through its health endpoints instead.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	var err error

	cfg.Server.Port = getEnvOrDefault("PORT", "5000")
	cfg.Server.ReadTimeout, err = getDurationOrDefault("SERVER_READ_TIMEOUT", 15*time.Second)
	if err != nil {
		return nil, err
	}
	// The write timeout must outlast the upstream call, which the bundled
	// test page warns can take 30-60 seconds.
	cfg.Server.WriteTimeout, err = getDurationOrDefault("SERVER_WRITE_TIMEOUT", 120*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.Server.IdleTimeout, err = getDurationOrDefault("SERVER_IDLE_TIMEOUT", 60*time.Second)
	if err != nil {
		return nil, err
	}

	cfg.OpenAI.APIKey = resolveAPIKey()
	cfg.OpenAI.Model = getEnvOrDefault("OPENAI_MODEL", "gpt-4")
	cfg.OpenAI.BaseURL = getEnvOrDefault("OPENAI_BASE_URL", "https://api.openai.com/v1")
	cfg.OpenAI.Timeout, err = getDurationOrDefault("OPENAI_TIMEOUT", 90*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.OpenAI.KeySet = os.Getenv("OPENAI_KEY") != "" || os.Getenv("OPENAI_API_KEY") != ""

	cfg.ProductionMode = os.Getenv("PORT") != "" || os.Getenv("RAILWAY_ENVIRONMENT") != ""

	return cfg, nil
}

// MustLoad is like Load but panics on error.
// Used in main() where it is required to fail fast.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}
	return cfg
}

// resolveAPIKey returns the first non-empty credential among the accepted
// environment variable names.
func resolveAPIKey() string {
	for _, name := range apiKeyEnvVars {
		if value := os.Getenv(name); value != "" {
			return value
		}
	}
	return ""
}

// getEnvOrDefault returns the env value or a default.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s: %w", key, err)
	}
	return duration, nil
}
