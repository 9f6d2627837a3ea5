package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL       string
	RequestTimeout   time.Duration
	SessionFile      string
	SessionKey       string
	PerPage          int
	SearchDebounce   time.Duration
	DashboardRefresh time.Duration
	ExportDir        string
	Environment      string
	LogLevel         string
	LogJSON          bool
}

func Load() Config {
	_ = godotenv.Load()

	return Config{
		APIBaseURL:       getEnv("HRM_API_BASE_URL", "http://localhost:8000"),
		RequestTimeout:   getEnvDuration("HRM_REQUEST_TIMEOUT", 30*time.Second),
		SessionFile:      getEnv("HRM_SESSION_FILE", defaultSessionFile()),
		SessionKey:       getEnv("HRM_SESSION_KEY", ""),
		PerPage:          getEnvInt("HRM_PER_PAGE", 10),
		SearchDebounce:   getEnvDuration("HRM_SEARCH_DEBOUNCE", 300*time.Millisecond),
		DashboardRefresh: getEnvDuration("HRM_DASHBOARD_REFRESH", time.Second),
		ExportDir:        getEnv("HRM_EXPORT_DIR", "."),
		Environment:      getEnv("HRM_ENV", "development"),
		LogLevel:         getEnv("HRM_LOG_LEVEL", "info"),
		LogJSON:          getEnvBool("HRM_LOG_JSON", false),
	}
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".hrm-session.json"
	}
	return filepath.Join(home, ".hrm-session.json")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	base := strings.TrimSpace(c.APIBaseURL)
	if base == "" {
		return fmt.Errorf("HRM_API_BASE_URL is required")
	}
	parsed, err := url.Parse(base)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("HRM_API_BASE_URL must be an absolute URL, got %q", base)
	}
	if c.PerPage <= 0 {
		return fmt.Errorf("HRM_PER_PAGE must be positive")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("HRM_REQUEST_TIMEOUT must be positive")
	}
	if c.SearchDebounce < 0 {
		return fmt.Errorf("HRM_SEARCH_DEBOUNCE must not be negative")
	}
	if strings.TrimSpace(c.SessionFile) == "" {
		return fmt.Errorf("HRM_SESSION_FILE is required")
	}
	return nil
}
