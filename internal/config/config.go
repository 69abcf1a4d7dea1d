package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Store backends
const (
	BackendCSV        = "csv"
	BackendPostgres   = "postgres"
	BackendClickHouse = "clickhouse"
	BackendRedis      = "redis"
	BackendSQL        = "sql"
)

type Config struct {
	// Server
	Port     int
	Env      string
	LogLevel string

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	// CORS
	AllowedOrigins []string

	// Processed player table
	StoreBackend string
	DataPath     string
	PlayersTable string

	// Database URLs
	PostgresURL   string
	ClickHouseURL string
	RedisURL      string

	// database/sql backend
	SQLDriver string
	SQLDSN    string

	// Model artifacts
	ModelPath     string
	ModelMetaPath string

	// Ingest
	IngestWorkers int
}

// Load loads configuration from environment variables.
// It returns an error if the selected store backend is missing its settings.
func Load() (*Config, error) {
	cfg := &Config{
		Port:     getEnvInt("PORT", 8080),
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		ReadTimeout:     getEnvDuration("READ_TIMEOUT", 10*time.Second),
		WriteTimeout:    getEnvDuration("WRITE_TIMEOUT", 30*time.Second),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 15*time.Second),

		StoreBackend: strings.ToLower(getEnv("STORE_BACKEND", BackendCSV)),
		DataPath:     getEnv("DATA_PATH", "data/processed/players_processed.csv"),
		PlayersTable: getEnv("PLAYERS_TABLE", "players"),

		SQLDriver: strings.ToLower(getEnv("SQL_DRIVER", "sqlite")),

		ModelPath:     getEnv("MODEL_PATH", "models/model.json"),
		ModelMetaPath: getEnv("MODEL_META_PATH", "models/model_meta.json"),

		IngestWorkers: getEnvInt("INGEST_WORKERS", 4),
	}

	// CORS
	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:3000")
	for _, o := range strings.Split(origins, ",") {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	// Backend configuration - fail if missing
	var err error
	switch cfg.StoreBackend {
	case BackendCSV:
	case BackendPostgres:
		if cfg.PostgresURL, err = getEnvRequired("POSTGRES_URL"); err != nil {
			return nil, err
		}
	case BackendClickHouse:
		if cfg.ClickHouseURL, err = getEnvRequired("CLICKHOUSE_URL"); err != nil {
			return nil, err
		}
	case BackendRedis:
		if cfg.RedisURL, err = getEnvRequired("REDIS_URL"); err != nil {
			return nil, err
		}
	case BackendSQL:
		if cfg.SQLDSN, err = getEnvRequired("SQL_DSN"); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}

	if cfg.IngestWorkers < 1 {
		cfg.IngestWorkers = 1
	}

	return cfg, nil
}

// IsProduction reports whether ENV selects production behaviour
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvRequired(key string) (string, error) {
	if value := os.Getenv(key); value != "" {
		return value, nil
	}
	return "", fmt.Errorf("missing required environment variable: %s", key)
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
