package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"winsbygroup.com/lunchly/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return cfgPath
}

func TestLoad(t *testing.T) {
	clearEnvVars := func() {
		os.Unsetenv("PORT")
		os.Unsetenv("DB_DRIVER")
		os.Unsetenv("DB_PATH")
		os.Unsetenv("DATABASE_URL")
	}

	t.Run("returns defaults when config file does not exist", func(t *testing.T) {
		clearEnvVars()

		cfg, err := config.Load("nonexistent.yaml")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if cfg.Addr != ":3000" {
			t.Errorf("expected Addr ':3000', got %q", cfg.Addr)
		}
		if cfg.DBDriver != config.DriverSQLite {
			t.Errorf("expected DBDriver %q, got %q", config.DriverSQLite, cfg.DBDriver)
		}
		if cfg.DBPath != "./lunchly.db" {
			t.Errorf("expected DBPath './lunchly.db', got %q", cfg.DBPath)
		}
		if cfg.DBPathSource != "default" {
			t.Errorf("expected DBPathSource 'default', got %q", cfg.DBPathSource)
		}
		if cfg.ReadTimeout != 5*time.Second {
			t.Errorf("expected ReadTimeout 5s, got %v", cfg.ReadTimeout)
		}
		if cfg.WriteTimeout != 10*time.Second {
			t.Errorf("expected WriteTimeout 10s, got %v", cfg.WriteTimeout)
		}
		if cfg.IdleTimeout != 120*time.Second {
			t.Errorf("expected IdleTimeout 120s, got %v", cfg.IdleTimeout)
		}
	})

	t.Run("loads values from YAML file", func(t *testing.T) {
		clearEnvVars()

		cfgPath := writeConfig(t, `
addr: ":9090"
db_driver: "postgres"
db_path: "/data/test.db"
database_url: "postgres://lunchly@localhost/lunchly?sslmode=disable"
read_timeout: 15s
write_timeout: 30s
idle_timeout: 60s
`)

		cfg, err := config.Load(cfgPath)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if cfg.Addr != ":9090" {
			t.Errorf("expected Addr ':9090', got %q", cfg.Addr)
		}
		if cfg.DBDriver != config.DriverPostgres {
			t.Errorf("expected DBDriver %q, got %q", config.DriverPostgres, cfg.DBDriver)
		}
		if cfg.DBPath != "/data/test.db" {
			t.Errorf("expected DBPath '/data/test.db', got %q", cfg.DBPath)
		}
		if cfg.DBPathSource != "yaml file" {
			t.Errorf("expected DBPathSource 'yaml file', got %q", cfg.DBPathSource)
		}
		if cfg.DatabaseURL != "postgres://lunchly@localhost/lunchly?sslmode=disable" {
			t.Errorf("unexpected DatabaseURL %q", cfg.DatabaseURL)
		}
		if cfg.ReadTimeout != 15*time.Second {
			t.Errorf("expected ReadTimeout 15s, got %v", cfg.ReadTimeout)
		}
		if cfg.WriteTimeout != 30*time.Second {
			t.Errorf("expected WriteTimeout 30s, got %v", cfg.WriteTimeout)
		}
		if cfg.IdleTimeout != 60*time.Second {
			t.Errorf("expected IdleTimeout 60s, got %v", cfg.IdleTimeout)
		}
	})

	t.Run("env vars override YAML values", func(t *testing.T) {
		clearEnvVars()

		cfgPath := writeConfig(t, `
db_driver: "sqlite3"
db_path: "/yaml/path.db"
`)

		os.Setenv("PORT", "8081")
		os.Setenv("DB_DRIVER", "postgres")
		os.Setenv("DB_PATH", "/env/override.db")
		os.Setenv("DATABASE_URL", "postgres://env")
		defer clearEnvVars()

		cfg, err := config.Load(cfgPath)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if cfg.Addr != ":8081" {
			t.Errorf("expected Addr ':8081', got %q", cfg.Addr)
		}
		if cfg.DBDriver != "postgres" {
			t.Errorf("expected DBDriver 'postgres', got %q", cfg.DBDriver)
		}
		if cfg.DBPath != "/env/override.db" {
			t.Errorf("expected DBPath '/env/override.db', got %q", cfg.DBPath)
		}
		if cfg.DBPathSource != "env var" {
			t.Errorf("expected DBPathSource 'env var', got %q", cfg.DBPathSource)
		}
		if cfg.DatabaseURL != "postgres://env" {
			t.Errorf("expected DatabaseURL 'postgres://env', got %q", cfg.DatabaseURL)
		}
	})

	t.Run("returns error for invalid YAML", func(t *testing.T) {
		clearEnvVars()

		cfgPath := writeConfig(t, `
addr: ":9090"
  invalid indentation
db_path: "/data/test.db"
`)

		if _, err := config.Load(cfgPath); err == nil {
			t.Error("expected error for invalid YAML, got nil")
		}
	})
}
