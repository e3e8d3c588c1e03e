package sqlite

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// IsConstraintError checks if the error is any SQLite constraint violation
// (NOT NULL, CHECK, FOREIGN KEY, UNIQUE).
func IsConstraintError(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint
	}
	return false
}

// IsForeignKeyError checks if the error is a SQLite FOREIGN KEY violation.
func IsForeignKeyError(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
	}
	return false
}
