package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

// Config holds all configuration values
type Config struct {
	Addr         string        `yaml:"addr"`
	DBDriver     string        `yaml:"db_driver"`
	DBPath       string        `yaml:"db_path"`      // sqlite3 file
	DatabaseURL  string        `yaml:"database_url"` // postgres DSN
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`

	DBPathSource string // where DBPath was set from: "default", "yaml file", or "env var"
	DemoMode     bool   // load sample data on new database (set via -demo flag)
}

// Load loads configuration from YAML file and overrides with env vars if present
func Load(path string) (*Config, error) {
	cfg := &Config{
		Addr:         ":3000",
		DBDriver:     DriverSQLite,
		DBPath:       "./lunchly.db",
		DBPathSource: "default",
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	if f, err := os.Open(path); err == nil {
		defer f.Close()
		prevDBPath := cfg.DBPath
		if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
			return nil, err
		}
		if cfg.DBPath != prevDBPath {
			cfg.DBPathSource = "yaml file"
		}
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Addr = ":" + v
	}
	if v := os.Getenv("DB_DRIVER"); v != "" {
		cfg.DBDriver = v
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		cfg.DBPath = v
		cfg.DBPathSource = "env var"
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}

	return cfg, nil
}
