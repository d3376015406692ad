package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the application configuration loaded from the environment
type Config struct {
	Env           string
	Version       string
	ServerAddress string
	AppURL        string

	// Database
	DBDriver string
	DBURL    string
	DBPath   string

	// Logging
	LogPath  string
	LogLevel string

	// Plugins that are installed in this deployment
	InstalledPlugins []string

	// CMS pages
	PagesPath        string
	PagesReindexCron string

	// Storage
	StorageProvider  string
	StorageBaseURL   string
	StorageBucket    string
	StorageRegion    string
	StorageEndpoint  string
	StorageAPIKey    string
	StorageAPISecret string
	StorageURLTTL    time.Duration

	// Search
	SearchMinQueryLength int

	CORSAllowedOrigins []string
}

// NewConfig reads the configuration from environment variables,
// falling back to defaults for anything unset.
func NewConfig() *Config {
	return &Config{
		Env:           getEnv("APP_ENV", "develop"),
		Version:       getEnv("APP_VERSION", "0.1.0"),
		ServerAddress: getEnv("SERVER_ADDRESS", ":8100"),
		AppURL:        strings.TrimRight(getEnv("APP_URL", "http://localhost:8100"), "/"),

		DBDriver: getEnv("DB_DRIVER", "sqlite"),
		DBURL:    getEnv("DB_URL", ""),
		DBPath:   getEnv("DB_PATH", "storage/sitesearch.db"),

		LogPath:  getEnv("LOG_PATH", "logs"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		InstalledPlugins: getEnvList("INSTALLED_PLUGINS", []string{"Graker.PhotoAlbums", "RainLab.Blog"}),

		PagesPath:        getEnv("PAGES_PATH", "content/pages"),
		PagesReindexCron: getEnv("PAGES_REINDEX_CRON", "*/5 * * * *"),

		StorageProvider:  getEnv("STORAGE_PROVIDER", "local"),
		StorageBaseURL:   getEnv("STORAGE_BASE_URL", "http://localhost:8100/storage"),
		StorageBucket:    getEnv("STORAGE_BUCKET", ""),
		StorageRegion:    getEnv("STORAGE_REGION", "us-east-1"),
		StorageEndpoint:  getEnv("STORAGE_ENDPOINT", ""),
		StorageAPIKey:    getEnv("STORAGE_API_KEY", ""),
		StorageAPISecret: getEnv("STORAGE_API_SECRET", ""),
		StorageURLTTL:    getEnvDuration("STORAGE_URL_TTL", time.Hour),

		SearchMinQueryLength: getEnvInt("SEARCH_MIN_QUERY_LENGTH", 2),

		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", nil),
	}
}

// IsProduction reports whether the app runs in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvList splits a comma separated variable, dropping empty entries
func getEnvList(key string, defaultValue []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
