package db

import (
	"database/sql"
	"fmt"
)

// migrations are idempotent schema statements, run in order on every open.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS plan_state (
		id         TEXT PRIMARY KEY CHECK(id = 'default'),
		data       TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
