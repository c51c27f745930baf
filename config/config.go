package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	AppVersion string
	LogLevel   string
	// File Upload
	UploadDir   string
	MaxFileSize int64 // bytes
	// CORS
	AllowedOrigins []string
	// Rate Limiting Configuration
	RateLimitWindowSeconds int
	RateLimitThreshold     int
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally; ignored in production if absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:       getEnv("PORT", "8080"),
		AppVersion: getEnv("APP_VERSION", "1.0.0"),
		LogLevel:   getEnv("LOG_LEVEL", "INFO"),
		// File Upload
		UploadDir:   getEnv("UPLOAD_DIR", "uploads"),
		MaxFileSize: int64(getEnvInt("MAX_FILE_SIZE_MB", 10)) * 1024 * 1024,
		// CORS
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "*")),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds: getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitThreshold:     getEnvInt("RATE_LIMIT_THRESHOLD", 100),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
