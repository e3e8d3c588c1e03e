// Package demodata provides sample customers and reservations for demo deployments.
package demodata

import (
	"context"
	"embed"

	"github.com/jmoiron/sqlx"
)

//go:embed sample.sql
var sampleSQL embed.FS

// Load inserts demo data into the database.
// This should only be called on a freshly created database after migrations.
func Load(ctx context.Context, db *sqlx.DB) error {
	data, err := sampleSQL.ReadFile("sample.sql")
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, string(data))
	return err
}
