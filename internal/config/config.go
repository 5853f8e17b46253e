package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

// Config is the full runtime configuration, loaded from environment
// variables. A local .env file is read by the entrypoint before loading.
type Config struct {
	Port        string
	DatabaseURL string
	RedisAddr   string
	JWTSecret   string
	Environment string

	CrossrefBaseURL string
	OpenAlexBaseURL string

	CitationCron    string
	AllowedOrigins  string
	ShutdownTimeout int // seconds
}

// LoadConfig reads configuration from the environment. The JWT secret has no
// default and is required outside development.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:            getEnvOrDefault("PORT", "8080"),
		DatabaseURL:     getEnvOrDefault("DATABASE_URL", ""),
		RedisAddr:       getEnvOrDefault("REDIS_ADDR", ""),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		Environment:     getEnvOrDefault("APP_ENV", "development"),
		CrossrefBaseURL: getEnvOrDefault("CROSSREF_BASE_URL", "https://api.crossref.org"),
		OpenAlexBaseURL: getEnvOrDefault("OPENALEX_BASE_URL", "https://api.openalex.org"),
		CitationCron:    getEnvOrDefault("CITATION_REFRESH_CRON", "0 3 * * *"),
		AllowedOrigins:  getEnvOrDefault("ALLOWED_ORIGINS", "*"),
		ShutdownTimeout: getEnvIntOrDefault("SHUTDOWN_TIMEOUT_SECONDS", 10),
	}
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		if cfg.Environment != "development" {
			return fmt.Errorf("JWT_SECRET is required when APP_ENV=%s", cfg.Environment)
		}
		cfg.JWTSecret = "dev-only-secret"
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
