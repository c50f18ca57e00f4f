// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"go.uber.org/multierr"
)

// Config holds all server settings.
type Config struct {
	// HTTP server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Receipt scanning
	TesseractPath string
	ScanMaxBytes  int64
	ScanTimeout   time.Duration

	// Logging
	LogLevel  string
	LogFormat string
}

// Load reads configuration from environment variables, falling back to
// defaults for anything unset.
func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
		WriteTimeout: getEnvDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),

		TesseractPath: getEnv("TESSERACT_PATH", "tesseract"),
		ScanMaxBytes:  int64(getEnvInt("SCAN_MAX_BYTES", 10<<20)),
		ScanTimeout:   getEnvDuration("SCAN_TIMEOUT", 30*time.Second),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}
}

// Validate reports every configuration problem, not just the first.
func (c *Config) Validate() error {
	var errs error

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("invalid port %q: must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = multierr.Append(errs, fmt.Errorf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.ScanMaxBytes <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("scan max bytes must be positive, got %d", c.ScanMaxBytes))
	}
	if c.ScanTimeout <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("scan timeout must be positive, got %s", c.ScanTimeout))
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		errs = multierr.Append(errs, fmt.Errorf("invalid log format %q: must be text or json", c.LogFormat))
	}

	return errs
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
