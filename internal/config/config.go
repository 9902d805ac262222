package config

import (
	"os"

	"invoicegen/internal/logger"
)

// Config holds the process-level runtime configuration read from the
// environment. The seller/payment configuration lives in config.toml
// and is loaded separately (see LoadConfigFile).
type Config struct {
	// ConfigPath overrides config.toml discovery (INVOICE_CONFIG).
	ConfigPath string

	// Logging Configuration
	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

// Load reads the runtime configuration from the environment. Every
// field has a default; Load never fails.
func Load() *Config {
	return &Config{
		ConfigPath:    getEnv("INVOICE_CONFIG", ""),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "console"),
		LogTimeFormat: getEnv("LOG_TIME_FORMAT", "2006-01-02T15:04:05Z07:00"),
		LogOutput:     getEnv("LOG_OUTPUT", "stderr"),
	}
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
