package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system,
// such as server settings and the upstream market-data API connection details.
//
// Example YAML/ENV equivalent:
//
//	SERVER_PORT=8080
//	UPSTREAM_BASE_URL=http://127.0.0.1:3000
//	UPSTREAM_TIMEOUT_SECONDS=10
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Upstream UpstreamConfig // Upstream market-data API settings
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// UpstreamConfig defines how to reach the market-data API that serves
// the per-index stock envelopes.
//
// Fields:
//   - BaseURL: scheme://host[:port] of the upstream API, without a trailing slash.
//   - TimeoutSeconds: per-request timeout in seconds.
//   - Timeout: computed time.Duration used by the HTTP client.
type UpstreamConfig struct {
	BaseURL        string
	TimeoutSeconds int
	Timeout        time.Duration
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
// All services should import this package and read from AppConfig instead of
// reloading environment variables directly.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Behavior:
//   - Sets defaults for all required fields.
//   - Reads environment variables automatically with viper.AutomaticEnv().
//   - Normalizes the upstream base URL and computes the client timeout.
//   - Calls validateConfig() to ensure required fields are present.
//
// Fatal exit:
//   - If required variables are missing, validateConfig() will terminate the app
//     with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("UPSTREAM_BASE_URL", "http://127.0.0.1:3000")
	viper.SetDefault("UPSTREAM_TIMEOUT_SECONDS", 10)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Upstream: UpstreamConfig{
			BaseURL:        strings.TrimRight(viper.GetString("UPSTREAM_BASE_URL"), "/"),
			TimeoutSeconds: viper.GetInt("UPSTREAM_TIMEOUT_SECONDS"),
		},
	}

	// Compute the client timeout (used by net/http)
	AppConfig.Upstream.Timeout = time.Duration(AppConfig.Upstream.TimeoutSeconds) * time.Second

	// Validate critical fields
	validateConfig()
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
//
// This avoids unexpected runtime failures due to incomplete configuration.
//
// Behavior:
//   - Checks each critical field of AppConfig.
//   - Collects missing ones in a slice.
//   - If any are missing, logs them and terminates the app with log.Fatalf().
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Upstream.BaseURL == "" {
		missing = append(missing, "UPSTREAM_BASE_URL")
	}
	if AppConfig.Upstream.TimeoutSeconds <= 0 {
		missing = append(missing, "UPSTREAM_TIMEOUT_SECONDS")
	}

	if len(missing) > 0 {
		log.Fatalf("❌ Missing required environment variables: %v\n", missing)
	}
}
