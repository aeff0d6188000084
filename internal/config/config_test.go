package config

import (
	"os"
	"testing"
)

func TestGetEnvDefault(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		envValue string
		def      string
		expected string
	}{
		{"uses env value", "TEST_VAR_1", "hello", "default", "hello"},
		{"uses default when unset", "TEST_VAR_2", "", "default", "default"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			if got := getEnvDefault(tc.key, tc.def); got != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestGetEnvIntDefault(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		envValue string
		def      int
		expected int
	}{
		{"parses integer", "TEST_INT_1", "42", 10, 42},
		{"uses default for empty", "TEST_INT_2", "", 10, 10},
		{"uses default for non-numeric", "TEST_INT_3", "abc", 10, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			if got := getEnvIntDefault(tc.key, tc.def); got != tc.expected {
				t.Errorf("Expected %d, got %d", tc.expected, got)
			}
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENVIRONMENT", "VERSION", "LOG_LEVEL", "API_KEY", "MODEL"} {
		os.Unsetenv(key)
	}

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.Environment != "development" {
		t.Errorf("Environment = %q", cfg.Environment)
	}
	if cfg.Model != "mock-adk-model" {
		t.Errorf("Model = %q", cfg.Model)
	}
	if cfg.APIKey != "" {
		t.Errorf("APIKey should default to empty, got %q", cfg.APIKey)
	}
	if cfg.MaxHistory != 0 {
		t.Errorf("MaxHistory = %d, want 0", cfg.MaxHistory)
	}
}
