package backup

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"

	"winsbygroup.com/lunchly/internal/sqlite"
)

func TestWriteDumpFileRemovesPartialDump(t *testing.T) {
	dir := t.TempDir()
	db, err := sqlx.Open(sqlite.DriverName, filepath.Join(dir, "src.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	db.Close()

	path := filepath.Join(dir, "partial_lunchly.sql.gz")
	if _, err := writeDumpFile(context.Background(), db, path); err == nil {
		t.Fatal("expected dump of a closed database to fail")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected %s to be removed, stat err = %v", path, err)
	}
}
