package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STORE_BACKEND", "")
	t.Setenv("PORT", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Port != 8080 || cfg.StoreBackend != BackendCSV || cfg.PlayersTable != "players" {
		t.Errorf("defaults = %+v", cfg)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "http://localhost:3000" {
		t.Errorf("origins = %v", cfg.AllowedOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("STORE_BACKEND", "SQL")
	t.Setenv("SQL_DSN", "file:wpi.db")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("INGEST_WORKERS", "0")
	t.Setenv("READ_TIMEOUT", "soon")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Port != 9090 || cfg.StoreBackend != BackendSQL || cfg.SQLDSN != "file:wpi.db" {
		t.Errorf("cfg = %+v", cfg)
	}
	if len(cfg.AllowedOrigins) != 2 {
		t.Errorf("origins = %v, want 2", cfg.AllowedOrigins)
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Errorf("shutdown timeout = %v", cfg.ShutdownTimeout)
	}
	if cfg.ReadTimeout != 10*time.Second {
		t.Errorf("unparsable READ_TIMEOUT gave %v, want default", cfg.ReadTimeout)
	}
	if cfg.IngestWorkers != 1 {
		t.Errorf("ingest workers = %d, want floor of 1", cfg.IngestWorkers)
	}
}

func TestLoadRequiresBackendSettings(t *testing.T) {
	tests := []struct {
		backend string
		key     string
	}{
		{BackendPostgres, "POSTGRES_URL"},
		{BackendClickHouse, "CLICKHOUSE_URL"},
		{BackendRedis, "REDIS_URL"},
		{BackendSQL, "SQL_DSN"},
	}
	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			t.Setenv("STORE_BACKEND", tt.backend)
			t.Setenv(tt.key, "")
			if _, err := Load(); err == nil {
				t.Errorf("Load() without %s want error", tt.key)
			}
		})
	}
}

func TestLoadUnknownBackend(t *testing.T) {
	t.Setenv("STORE_BACKEND", "mongo")
	if _, err := Load(); err == nil {
		t.Error("Load() with unknown backend want error")
	}
}
