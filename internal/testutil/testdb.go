package testutil

import (
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"

	"winsbygroup.com/lunchly/internal/config"
	"winsbygroup.com/lunchly/internal/database"
)

// NewTestDB returns a migrated SQLite database in a temp dir, closed on cleanup.
func NewTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	return NewTestDBAt(t, filepath.Join(t.TempDir(), "test.db"))
}

func NewTestDBAt(t *testing.T, dbPath string) *sqlx.DB {
	t.Helper()

	db, _, err := database.Open(&config.Config{
		DBDriver:     config.DriverSQLite,
		DBPath:       dbPath,
		DBPathSource: "test",
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// Exec runs setup SQL and fails the test on error.
func Exec(t *testing.T, db *sqlx.DB, query string, args ...any) {
	t.Helper()
	if _, err := db.Exec(query, args...); err != nil {
		t.Fatalf("exec test sql: %v", err)
	}
}

// CountRows returns the number of rows in a table.
func CountRows(t *testing.T, db *sqlx.DB, table string) int {
	t.Helper()
	var count int
	if err := db.Get(&count, "SELECT COUNT(*) FROM "+table); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return count
}
