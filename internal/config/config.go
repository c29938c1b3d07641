package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	GeminiAPIKey       string
	GeminiModel        string
	ContentDB          string
	HTTPPort           string
	LogLevel           string
	JWTSecret          string
	DefaultLanguage    string
	FreeTierEntryLimit int
}

// Load reads configuration from the environment, with a .env file as an
// optional source. GEMINI_API_KEY may be empty only when the server runs
// in offline mode; main enforces that.
func Load() (*Config, error) {
	// Load .env file if it exists; real environment variables win.
	_ = godotenv.Load()

	cfg := &Config{
		GeminiAPIKey:       getEnv("GEMINI_API_KEY", ""),
		GeminiModel:        getEnv("GEMINI_MODEL", ""),
		ContentDB:          getEnv("CONTENT_DB", ""),
		HTTPPort:           getEnv("HTTP_PORT", "8080"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		DefaultLanguage:    getEnv("DEFAULT_LANGUAGE", "en"),
		FreeTierEntryLimit: getEnvAsInt("FREE_TIER_ENTRY_LIMIT", 8),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}
	return cfg, nil
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
