package infrastructure

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server settings
	Port string `json:"port"`
	Host string `json:"host"`

	// Gemini API settings
	GeminiAPIKey string `json:"-"` // Don't expose in JSON
	GeminiModel  string `json:"gemini_model"`

	// API auth settings
	AuthToken string `json:"-"` // Don't expose in JSON

	// Cache settings
	CacheType     string        `json:"cache_type"`
	CacheBucket   string        `json:"cache_bucket"`
	CacheDuration time.Duration `json:"cache_duration"`

	// Content extraction settings
	MaxContentLength     int           `json:"max_content_length"`
	FetchTimeout         time.Duration `json:"fetch_timeout"`
	MaxRequestsPerMinute int           `json:"max_requests_per_minute"`

	// Scheduled watch settings
	WatchURLs     []string `json:"watch_urls"`
	WatchSchedule string   `json:"watch_schedule"`
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	config := &Config{
		Port:                 getEnvOrDefault("PORT", "8080"),
		Host:                 getEnvOrDefault("HOST", "0.0.0.0"),
		GeminiAPIKey:         getEnvOrDefault("GEMINI_API_KEY", ""),
		GeminiModel:          getEnvOrDefault("GEMINI_MODEL", "gemini-2.5-flash-preview-05-20"),
		AuthToken:            getEnvOrDefault("AUTH_TOKEN", ""),
		CacheType:            getEnvOrDefault("CACHE_TYPE", "memory"),
		CacheBucket:          getEnvOrDefault("CACHE_BUCKET", ""),
		CacheDuration:        time.Duration(getEnvOrDefaultInt("CACHE_DURATION_HOURS", 24)) * time.Hour,
		MaxContentLength:     getEnvOrDefaultInt("MAX_CONTENT_LENGTH", 50000),
		FetchTimeout:         time.Duration(getEnvOrDefaultInt("FETCH_TIMEOUT_SECONDS", 30)) * time.Second,
		MaxRequestsPerMinute: getEnvOrDefaultInt("MAX_REQUESTS_PER_MINUTE", 10),
		WatchURLs:            splitList(os.Getenv("WATCH_URLS")),
		WatchSchedule:        getEnvOrDefault("WATCH_SCHEDULE", "0 8 * * *"),
	}

	return config, config.validate()
}

// validate checks if required configuration values are present
func (c *Config) validate() error {
	if c.GeminiAPIKey == "" {
		return &ConfigError{Field: "GEMINI_API_KEY", Message: "Gemini API key is required"}
	}
	if c.CacheType != "memory" && c.CacheType != "cloud-storage" {
		return &ConfigError{Field: "CACHE_TYPE", Message: "must be memory or cloud-storage"}
	}
	if c.CacheType == "cloud-storage" && c.CacheBucket == "" {
		return &ConfigError{Field: "CACHE_BUCKET", Message: "bucket is required for cloud-storage cache"}
	}
	return nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvOrDefaultInt returns environment variable value as int or default if not set
func getEnvOrDefaultInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// splitList splits a comma-separated environment value, trimming whitespace
// and dropping empty items
func splitList(value string) []string {
	if value == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
