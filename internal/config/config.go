// Package config loads application configuration from the environment.
package config

import "os"

// Config holds all configuration for the application.
type Config struct {
	// Addr is the listen address for the HTTP server.
	Addr string

	// DBPath is the SQLite snapshot location.
	DBPath string

	// LogLevel is debug, info, warn, or error.
	LogLevel string
}

// Load reads configuration from environment variables, falling back to
// local-use defaults. Nothing is required; the app always starts.
func Load() *Config {
	return &Config{
		Addr:     getEnvOrDefault("CLUB_ADDR", ":8080"),
		DBPath:   getEnvOrDefault("CLUB_DB_PATH", "./data/clubsheet.db"),
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
	}
}

// getEnvOrDefault returns environment variable value or default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
