package sqlite

import (
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
)

// DriverName is go-sqlite3 with the lunchly SQL functions registered on
// every connection.
const DriverName = "sqlite3_lunchly"

func init() {
	sql.Register(DriverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			// SQLite's LOWER only folds ASCII
			return conn.RegisterFunc("ulower", strings.ToLower, true)
		},
	})
	sqlx.BindDriver(DriverName, sqlx.QUESTION)
}
