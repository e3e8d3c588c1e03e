// Package database opens the configured driver and brings its schema up to date.
package database

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"winsbygroup.com/lunchly/internal/config"
	"winsbygroup.com/lunchly/internal/postgres"
	"winsbygroup.com/lunchly/internal/sqlite"
)

// ErrUnsupportedDriver is returned for a db_driver other than sqlite3 or postgres.
var ErrUnsupportedDriver = errors.New("unsupported database driver")

// Open connects to the configured database and applies migrations.
// isNew reports whether a SQLite file was created by this call; it is
// always false for postgres.
func Open(cfg *config.Config) (db *sqlx.DB, isNew bool, err error) {
	switch cfg.DBDriver {
	case config.DriverSQLite:
		return openSQLite(cfg)
	case config.DriverPostgres:
		db, err := openPostgres(cfg)
		return db, false, err
	default:
		return nil, false, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.DBDriver)
	}
}

func openSQLite(cfg *config.Config) (*sqlx.DB, bool, error) {
	isNew := false
	if _, err := os.Stat(cfg.DBPath); os.IsNotExist(err) {
		isNew = true
		log.Printf("Creating database '%s' (from %s setting)", cfg.DBPath, cfg.DBPathSource)
	} else {
		log.Printf("Opening database '%s' (from %s setting)", cfg.DBPath, cfg.DBPathSource)
	}

	db, err := sqlx.Connect(sqlite.DriverName, SQLiteDSN(cfg.DBPath))
	if err != nil {
		return nil, false, err
	}

	// WAL only needs setting once per file but is harmless to repeat
	if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		db.Close()
		return nil, false, err
	}

	var fkEnabled int
	if err := db.QueryRow(`PRAGMA foreign_keys;`).Scan(&fkEnabled); err != nil {
		db.Close()
		return nil, false, errors.New("SQLite foreign key support check failed: " + err.Error())
	}
	if fkEnabled != 1 {
		db.Close()
		return nil, false, errors.New("SQLite foreign keys not supported (requires SQLite 3.6.19+ compiled without SQLITE_OMIT_FOREIGN_KEY)")
	}

	if err := sqlite.RunMigrations(db.DB); err != nil {
		db.Close()
		return nil, false, err
	}

	return db, isNew, nil
}

// SQLiteDSN adds the foreign key option to path. foreign_keys is a per
// connection setting, so it goes in the DSN rather than a one-off PRAGMA.
func SQLiteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on"
}

func openPostgres(cfg *config.Config) (*sqlx.DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, errors.New("database_url (DATABASE_URL) is required for the postgres driver")
	}

	log.Print("Opening postgres database (from database_url setting)")
	db, err := sqlx.Connect(config.DriverPostgres, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	if err := postgres.RunMigrations(db.DB); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// IsConstraintError reports an integrity constraint violation from either driver.
func IsConstraintError(err error) bool {
	return sqlite.IsConstraintError(err) || postgres.IsConstraintError(err)
}
