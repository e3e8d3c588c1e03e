package database_test

import (
	"errors"
	"path/filepath"
	"testing"

	"winsbygroup.com/lunchly/internal/config"
	"winsbygroup.com/lunchly/internal/database"
)

func TestOpenSQLite(t *testing.T) {
	cfg := &config.Config{
		DBDriver:     config.DriverSQLite,
		DBPath:       filepath.Join(t.TempDir(), "lunchly.db"),
		DBPathSource: "test",
	}

	db, isNew, err := database.Open(cfg)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if !isNew {
		t.Error("expected isNew for a fresh file")
	}

	var fk int
	if err := db.Get(&fk, `PRAGMA foreign_keys;`); err != nil {
		t.Fatalf("read foreign_keys: %v", err)
	}
	if fk != 1 {
		t.Errorf("expected foreign keys enabled, got %d", fk)
	}
	db.Close()

	db, isNew, err = database.Open(cfg)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db.Close()
	if isNew {
		t.Error("expected existing database on reopen")
	}

	var tables int
	if err := db.Get(&tables, `SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name IN ('customers', 'reservations')`); err != nil {
		t.Fatalf("count tables: %v", err)
	}
	if tables != 2 {
		t.Errorf("expected 2 tables, got %d", tables)
	}
}

func TestOpenErrors(t *testing.T) {
	t.Run("unsupported driver", func(t *testing.T) {
		_, _, err := database.Open(&config.Config{DBDriver: "oracle"})
		if !errors.Is(err, database.ErrUnsupportedDriver) {
			t.Errorf("expected ErrUnsupportedDriver, got %v", err)
		}
	})

	t.Run("postgres without url", func(t *testing.T) {
		_, _, err := database.Open(&config.Config{DBDriver: config.DriverPostgres})
		if err == nil {
			t.Error("expected error when database_url is missing")
		}
	})
}

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"./lunchly.db", "./lunchly.db?_foreign_keys=on"},
		{"./lunchly.db?cache=shared", "./lunchly.db?cache=shared&_foreign_keys=on"},
	}
	for _, tt := range tests {
		if got := database.SQLiteDSN(tt.in); got != tt.want {
			t.Errorf("SQLiteDSN(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}
