package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	Environment   string
	Version       string
	LogLevel      string
	AllowedOrigin string
	// Model name echoed back by the completions stub when the request
	// does not carry one.
	Model string
	// Optional API key. When set, the POST AI endpoints require
	// "Authorization: Bearer <key>".
	APIKey string
	// Optional YAML file overriding the built-in keyword reply rules.
	RepliesFile string
	// Max stored messages per conversation; 0 keeps everything.
	MaxHistory int
}

func Load() Config {
	_ = godotenv.Load()
	return Config{
		Port:          getEnvDefault("PORT", "8080"),
		Environment:   getEnvDefault("ENVIRONMENT", "development"),
		Version:       getEnvDefault("VERSION", "1.0.0"),
		LogLevel:      getEnvDefault("LOG_LEVEL", "info"),
		AllowedOrigin: getEnvDefault("ALLOWED_ORIGIN", "*"),
		Model:         getEnvDefault("MODEL", "mock-adk-model"),
		APIKey:        os.Getenv("API_KEY"),
		RepliesFile:   os.Getenv("REPLIES_FILE"),
		MaxHistory:    getEnvIntDefault("MAX_HISTORY", 0),
	}
}

func getEnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvIntDefault(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
