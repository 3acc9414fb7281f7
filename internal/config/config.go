package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the CLI
type Config struct {
	// Logging
	LogLevel string

	// Output
	NoColor bool

	// Default number of cards dealt by the deal command
	DealSize int

	// Environment
	Environment string // "development" or "production"
}

// Load reads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Only return error if file exists but couldn't be loaded
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	dealSize, err := getEnvInt("DEAL_SIZE", 5)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		LogLevel:    getEnvWithDefault("LOG_LEVEL", "INFO"),
		NoColor:     os.Getenv("NO_COLOR") != "",
		DealSize:    dealSize,
		Environment: getEnvWithDefault("ENVIRONMENT", "development"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks that the configuration values are usable
func (c *Config) validate() error {
	if c.DealSize < 1 {
		return fmt.Errorf("DEAL_SIZE must be at least 1, got %d", c.DealSize)
	}
	return nil
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// getEnvWithDefault returns environment variable value or default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns an integer environment variable or default if not set
func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, value)
	}
	return parsed, nil
}
