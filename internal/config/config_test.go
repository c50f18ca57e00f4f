package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "TESSERACT_PATH", "SCAN_TIMEOUT", "SCAN_MAX_BYTES", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.TesseractPath != "tesseract" {
		t.Errorf("TesseractPath = %q, want tesseract", cfg.TesseractPath)
	}
	if cfg.ScanTimeout != 30*time.Second {
		t.Errorf("ScanTimeout = %v, want 30s", cfg.ScanTimeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SCAN_TIMEOUT", "5s")
	t.Setenv("SCAN_MAX_BYTES", "1024")
	t.Setenv("LOG_FORMAT", "json")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.ScanTimeout != 5*time.Second {
		t.Errorf("ScanTimeout = %v, want 5s", cfg.ScanTimeout)
	}
	if cfg.ScanMaxBytes != 1024 {
		t.Errorf("ScanMaxBytes = %d, want 1024", cfg.ScanMaxBytes)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want json", cfg.LogFormat)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "non-numeric port",
			mutate:  func(c *Config) { c.Port = "http" },
			wantErr: "invalid port",
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Port = "70000" },
			wantErr: "invalid port",
		},
		{
			name:    "bad log format",
			mutate:  func(c *Config) { c.LogFormat = "xml" },
			wantErr: "invalid log format",
		},
		{
			name:    "non-positive scan timeout",
			mutate:  func(c *Config) { c.ScanTimeout = 0 },
			wantErr: "scan timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Load()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}

	t.Run("all problems reported", func(t *testing.T) {
		cfg := Load()
		cfg.Port = "nope"
		cfg.LogFormat = "xml"

		err := cfg.Validate()
		if err == nil {
			t.Fatal("expected error")
		}
		for _, want := range []string{"invalid port", "invalid log format"} {
			if !strings.Contains(err.Error(), want) {
				t.Errorf("Validate() = %v, missing %q", err, want)
			}
		}
	})
}
