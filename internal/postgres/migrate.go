// Package postgres holds the PostgreSQL schema and error helpers for the
// alternate "postgres" driver.
package postgres

import (
	"database/sql"
	"errors"

	"github.com/GuiaBolso/darwin"
	"github.com/lib/pq"

	"winsbygroup.com/lunchly/internal/migrate"
)

// defineMigrations mirrors the SQLite schema in PostgreSQL types.
// *NEVER* change or remove a step once released.
func defineMigrations() []darwin.Migration {
	return []darwin.Migration{
		{Version: 1.01, Description: "Create Table 'customers'", Script: `
		CREATE TABLE IF NOT EXISTS customers (
			id SERIAL PRIMARY KEY,
			first_name VARCHAR(255) NOT NULL,
			last_name VARCHAR(255) NOT NULL,
			phone VARCHAR(255) NOT NULL DEFAULT '',
			notes TEXT NOT NULL DEFAULT ''
		);`},

		{Version: 1.02, Description: "Create Index 'idx_customers_name'", Script: `
		CREATE INDEX IF NOT EXISTS idx_customers_name ON customers (last_name, first_name);`},

		{Version: 1.03, Description: "Create Table 'reservations'", Script: `
		CREATE TABLE IF NOT EXISTS reservations (
			id SERIAL PRIMARY KEY,
			customer_id INTEGER NOT NULL REFERENCES customers (id) ON DELETE CASCADE,
			start_at TIMESTAMP NOT NULL,
			num_guests INTEGER NOT NULL CHECK (num_guests > 0),
			notes TEXT NOT NULL DEFAULT ''
		);`},

		{Version: 1.04, Description: "Create Index 'idx_reservations_customer_id'", Script: `
		CREATE INDEX IF NOT EXISTS idx_reservations_customer_id ON reservations (customer_id);`},
	}
}

func migrationSet() migrate.Set {
	return migrate.Set{
		Name:           "postgres",
		Dialect:        darwin.PostgresDialect{},
		TableExistsSQL: `select count(*) from information_schema.tables where table_name = 'darwin_migrations';`,
		Migrations:     defineMigrations(),
	}
}

// Schema returns the PostgreSQL definitions as a string for display.
func Schema() string {
	return migrate.Describe(migrationSet())
}

// RunMigrations applies all migrations to an already-open *sql.DB.
func RunMigrations(db *sql.DB) error {
	return migrate.Run(db, migrationSet())
}

// IsConstraintError checks if the error is a PostgreSQL integrity
// constraint violation (SQLSTATE class 23).
func IsConstraintError(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code.Class() == "23"
	}
	return false
}
