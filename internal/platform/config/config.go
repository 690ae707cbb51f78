package config

import (
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port           string
	IsProduction   bool
	LogLevel       slog.Level
	DatabaseURL    string // Optional; enables db:// history sources
	MigrationsPath string
	JWTSecret      string // Empty disables API authentication
	RateLimit      string // ulule/limiter format, e.g. "60-M"
	AllowedOrigins []string

	// Download settings for remote history tables
	DownloadTimeout time.Duration
	DownloadRetries int
	UserAgent       string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("RATE_LIMIT", "60-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
	v.SetDefault("DOWNLOAD_TIMEOUT", "15s")
	v.SetDefault("DOWNLOAD_RETRIES", 2)
	v.SetDefault("USER_AGENT", "growth-estimator/1.0")
	v.AutomaticEnv()

	cfg := &Config{
		Port:            v.GetString("PORT"),
		IsProduction:    v.GetBool("IS_PRODUCTION"),
		LogLevel:        parseLogLevel(v.GetString("LOG_LEVEL")),
		DatabaseURL:     v.GetString("PGSQL_URL"),
		MigrationsPath:  v.GetString("MIGRATIONS_PATH"),
		JWTSecret:       v.GetString("JWT_SECRET"),
		RateLimit:       v.GetString("RATE_LIMIT"),
		AllowedOrigins:  splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		DownloadRetries: v.GetInt("DOWNLOAD_RETRIES"),
		UserAgent:       v.GetString("USER_AGENT"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	// Load download timeout (e.g., "15s", "1m")
	timeoutStr := v.GetString("DOWNLOAD_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		timeout = 15 * time.Second
		log.Printf("Warning: Invalid value for DOWNLOAD_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
	}
	cfg.DownloadTimeout = timeout

	if cfg.DownloadRetries < 0 {
		log.Printf("Warning: DOWNLOAD_RETRIES is negative (%d). Defaulting to 0.\n", cfg.DownloadRetries)
		cfg.DownloadRetries = 0
	}

	if cfg.JWTSecret == "" && cfg.IsProduction {
		log.Println("Warning: JWT_SECRET not set in production. The estimation API is unauthenticated.")
	}
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set. db:// history sources are disabled.")
	}

	return cfg, nil
}

func parseLogLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
