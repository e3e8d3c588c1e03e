package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/GuiaBolso/darwin"
	_ "github.com/mattn/go-sqlite3"

	"winsbygroup.com/lunchly/internal/migrate"
)

// ApplicationID is the SQLite application_id for lunchly databases.
// "LNCH" in ASCII: L=0x4C, N=0x4E, C=0x43, H=0x48
const ApplicationID = 0x4C4E4348

// ErrInvalidDatabase is returned when the database is not a valid lunchly database.
var ErrInvalidDatabase = errors.New("not a valid 'lunchly' database")

// defineMigrations returns the SQLite schema steps.
// Comments may only follow sql on a line (they are stripped before the checksum).
// *NEVER* change or remove a step once released, its checksum is stored.
func defineMigrations() []darwin.Migration {
	return []darwin.Migration{
		{Version: 1.00, Description: "Set application_id", Script: `
		PRAGMA application_id = 0x4C4E4348;`},

		{Version: 1.01, Description: "Create Table 'customers'", Script: `
		CREATE TABLE IF NOT EXISTS customers (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			first_name VARCHAR(255) NOT NULL,
			last_name VARCHAR(255) NOT NULL,
			phone VARCHAR(255) NOT NULL DEFAULT '',
			notes TEXT NOT NULL DEFAULT ''
		);`},

		{Version: 1.02, Description: "Create Index 'idx_customers_name'", Script: `
		CREATE INDEX IF NOT EXISTS idx_customers_name ON customers (last_name ASC, first_name ASC);`},

		{Version: 1.03, Description: "Create Table 'reservations'", Script: `
		CREATE TABLE IF NOT EXISTS reservations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			customer_id INTEGER NOT NULL,
			start_at TIMESTAMP NOT NULL,
			num_guests INTEGER NOT NULL CHECK (num_guests > 0),
			notes TEXT NOT NULL DEFAULT '',
			FOREIGN KEY (customer_id) REFERENCES customers (id) ON DELETE CASCADE
		);`},

		{Version: 1.04, Description: "Create Index 'idx_reservations_customer_id'", Script: `
		CREATE INDEX IF NOT EXISTS idx_reservations_customer_id ON reservations (customer_id ASC);`},
	}
}

func migrationSet() migrate.Set {
	return migrate.Set{
		Name:           "sqlite",
		Dialect:        darwin.SqliteDialect{},
		TableExistsSQL: `select count(*) from sqlite_master where tbl_name = 'darwin_migrations';`,
		Migrations:     defineMigrations(),
	}
}

// Schema returns the SQLite definitions as a string for display.
func Schema() string {
	return migrate.Describe(migrationSet())
}

// VerifyApplicationID checks that the database has the lunchly application_id.
// Empty databases (application_id 0, no tables) are accepted.
func VerifyApplicationID(db *sql.DB) error {
	var appID int
	if err := db.QueryRow("PRAGMA application_id;").Scan(&appID); err != nil {
		return fmt.Errorf("read application_id: %w", err)
	}

	if appID == ApplicationID {
		return nil
	}
	if appID != 0 {
		return fmt.Errorf("%w (application_id 0x%X)", ErrInvalidDatabase, appID)
	}

	var tableCount int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name NOT LIKE 'sqlite_%'`).Scan(&tableCount)
	if err != nil {
		return fmt.Errorf("check tables: %w", err)
	}
	if tableCount > 0 {
		return fmt.Errorf("%w (has tables but no application_id)", ErrInvalidDatabase)
	}

	return nil
}

// RunMigrations applies all migrations to an already-open *sql.DB.
func RunMigrations(db *sql.DB) error {
	if err := VerifyApplicationID(db); err != nil {
		return err
	}
	return migrate.Run(db, migrationSet())
}
