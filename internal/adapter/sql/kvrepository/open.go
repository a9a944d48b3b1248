package kvrepository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// SQLiteDriver is the database/sql name registered by modernc.org/sqlite
const SQLiteDriver = "sqlite"

func init() {
	sqlx.BindDriver(SQLiteDriver, sqlx.QUESTION)
}

// Open connects to dsn with driver and checks the connection. The driver
// package must be imported by the caller.
func Open(ctx context.Context, driver, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}

	// SQLite serializes writers; one connection also keeps ":memory:" on a single database.
	if driver == SQLiteDriver {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to reach %s database: %w", driver, err)
	}
	return db, nil
}
