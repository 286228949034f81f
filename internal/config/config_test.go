package config

import (
	"strings"
	"testing"
)

func valid() Config {
	return Config{
		Port:               "8082",
		LogLevel:           "info",
		CurrencySymbol:     "€",
		Language:           "en",
		Theme:              "light",
		RateLimitPerMinute: 60,
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		wantErr     bool
		errorString string
	}{
		{
			name:   "valid defaults",
			mutate: func(c *Config) {},
		},
		{
			name:        "non-numeric port",
			mutate:      func(c *Config) { c.Port = "abc" },
			wantErr:     true,
			errorString: "invalid port 'abc'",
		},
		{
			name:        "port out of range",
			mutate:      func(c *Config) { c.Port = "70000" },
			wantErr:     true,
			errorString: "must be between 1 and 65535",
		},
		{
			name:        "unknown theme",
			mutate:      func(c *Config) { c.Theme = "sepia" },
			wantErr:     true,
			errorString: "invalid theme",
		},
		{
			name:        "empty currency symbol",
			mutate:      func(c *Config) { c.CurrencySymbol = " " },
			wantErr:     true,
			errorString: "currency symbol",
		},
		{
			name:        "rate limit too low",
			mutate:      func(c *Config) { c.RateLimitPerMinute = 0 },
			wantErr:     true,
			errorString: "rate limit",
		},
		{
			name: "sheets export without credentials",
			mutate: func(c *Config) {
				c.GoogleSpreadsheetID = "sheet-id"
			},
			wantErr:     true,
			errorString: "GOOGLE_SERVICE_ACCOUNT",
		},
		{
			name: "sheets export with inline credentials",
			mutate: func(c *Config) {
				c.GoogleSpreadsheetID = "sheet-id"
				c.GoogleServiceAccountJSON = `{"type":"service_account"}`
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "")
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error containing %q", tt.errorString)
				}
				if !strings.Contains(err.Error(), tt.errorString) {
					t.Fatalf("error %q does not contain %q", err.Error(), tt.errorString)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "CURRENCY_SYMBOL", "THEME", "RATE_LIMIT_PER_MINUTE"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	if cfg.Port != "8082" {
		t.Fatalf("default port expected 8082, got %s", cfg.Port)
	}
	if cfg.CurrencySymbol != "€" {
		t.Fatalf("default currency expected €, got %s", cfg.CurrencySymbol)
	}
	if cfg.SheetsExportEnabled() {
		t.Fatalf("sheets export must be disabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}
