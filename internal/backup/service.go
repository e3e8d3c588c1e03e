// Package backup writes gzip-compressed SQL dumps of a SQLite database.
package backup

import (
	"bufio"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"winsbygroup.com/lunchly/internal/config"
	"winsbygroup.com/lunchly/internal/sqlite"
)

// ErrUnsupportedDriver is returned when the database is not SQLite.
var ErrUnsupportedDriver = errors.New("backup is only supported for sqlite3 databases")

// sqliteTimeLayout matches the layout go-sqlite3 writes for time.Time values.
const sqliteTimeLayout = "2006-01-02 15:04:05.999999999-07:00"

type Service struct {
	db     *sqlx.DB
	dbPath string
}

func NewService(db *sqlx.DB, dbPath string) *Service {
	return &Service{
		db:     db,
		dbPath: dbPath,
	}
}

// Result describes a completed backup file.
type Result struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
	Size     int64  `json:"size"`
}

// Create writes <db dir>/backups/<timestamp>_lunchly.sql.gz.
func (s *Service) Create(ctx context.Context) (*Result, error) {
	if s.db.DriverName() != sqlite.DriverName {
		return nil, ErrUnsupportedDriver
	}

	backupDir := filepath.Join(filepath.Dir(s.dbPath), "backups")
	if err := os.MkdirAll(backupDir, 0755); err != nil {
		return nil, fmt.Errorf("create backup directory: %w", err)
	}

	filename := time.Now().Format("2006-01-02_15.04.05") + "_lunchly.sql.gz"
	backupPath := filepath.Join(backupDir, filename)

	// VACUUM INTO gives a consistent snapshot to read from while the live
	// database keeps taking writes
	snapshot := filepath.Join(backupDir, "snapshot.db")
	os.Remove(snapshot)
	defer os.Remove(snapshot)
	if _, err := s.db.ExecContext(ctx, `VACUUM INTO ?`, snapshot); err != nil {
		return nil, fmt.Errorf("vacuum into snapshot: %w", err)
	}

	snapDB, err := sqlx.Open(config.DriverSQLite, snapshot+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer snapDB.Close()

	size, err := writeDumpFile(ctx, snapDB, backupPath)
	if err != nil {
		return nil, err
	}

	return &Result{
		Filename: filename,
		Path:     backupPath,
		Size:     size,
	}, nil
}

// writeDumpFile gzips a dump of db into path. A failed dump leaves no file behind.
func writeDumpFile(ctx context.Context, db *sqlx.DB, path string) (size int64, err error) {
	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create backup file: %w", err)
	}
	defer func() {
		file.Close()
		if err != nil {
			os.Remove(path)
		}
	}()

	gz := gzip.NewWriter(file)
	if err := Dump(ctx, db, gz); err != nil {
		return 0, fmt.Errorf("dump: %w", err)
	}
	if err := gz.Close(); err != nil {
		return 0, fmt.Errorf("close gzip writer: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		return 0, fmt.Errorf("stat backup file: %w", err)
	}
	return info.Size(), nil
}

type schemaObject struct {
	Type string `db:"type"`
	Name string `db:"name"`
	SQL  string `db:"sql"`
}

// Dump writes the schema and every row of db to w as SQL statements.
func Dump(ctx context.Context, db *sqlx.DB, w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "-- Lunchly Database Backup\n-- Generated: %s\n", time.Now().Format(time.RFC3339))
	bw.WriteString("PRAGMA foreign_keys=OFF;\nBEGIN TRANSACTION;\n\n")

	var schemas []schemaObject
	err := db.SelectContext(ctx, &schemas, `
		SELECT type, name, sql
		FROM sqlite_master
		WHERE sql IS NOT NULL
		  AND name NOT LIKE 'sqlite_%'
		ORDER BY
			CASE type
				WHEN 'table' THEN 1
				WHEN 'index' THEN 2
				WHEN 'trigger' THEN 3
				WHEN 'view' THEN 4
			END,
			name
	`)
	if err != nil {
		return fmt.Errorf("query schemas: %w", err)
	}
	for _, so := range schemas {
		bw.WriteString(so.SQL + ";\n")
	}
	bw.WriteString("\n")

	for _, so := range schemas {
		if so.Type != "table" {
			continue
		}
		if err := writeInserts(ctx, db, bw, so.Name); err != nil {
			return fmt.Errorf("inserts for %s: %w", so.Name, err)
		}
	}

	bw.WriteString("COMMIT;\nPRAGMA journal_mode=WAL;\n")
	return bw.Flush()
}

func writeInserts(ctx context.Context, db *sqlx.DB, w *bufio.Writer, table string) error {
	rows, err := db.QueryxContext(ctx, fmt.Sprintf("SELECT * FROM %q", table))
	if err != nil {
		return fmt.Errorf("query rows: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return fmt.Errorf("get columns: %w", err)
	}
	quoted := make([]string, len(columns))
	for i, col := range columns {
		quoted[i] = fmt.Sprintf("%q", col)
	}
	prefix := fmt.Sprintf("INSERT INTO %q (%s) VALUES (", table, strings.Join(quoted, ", "))

	n := 0
	for rows.Next() {
		row, err := rows.SliceScan()
		if err != nil {
			return fmt.Errorf("scan row: %w", err)
		}
		values := make([]string, len(row))
		for i, v := range row {
			values[i] = formatValue(v)
		}
		w.WriteString(prefix + strings.Join(values, ", ") + ");\n")
		n++
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate rows: %w", err)
	}
	if n > 0 {
		w.WriteString("\n")
	}
	return nil
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return quote(string(val))
	case string:
		return quote(val)
	case time.Time:
		return quote(val.Format(sqliteTimeLayout))
	case int64, float64:
		return fmt.Sprintf("%v", val)
	case bool:
		if val {
			return "1"
		}
		return "0"
	default:
		return quote(fmt.Sprintf("%v", val))
	}
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
