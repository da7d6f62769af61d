package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations are applied in order on every open. Statements must be
// idempotent; ALTER TABLE statements that re-run tolerate duplicate
// column errors in Migrate.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS items (
		id           TEXT PRIMARY KEY,
		title        TEXT NOT NULL,
		notes        TEXT NOT NULL DEFAULT '',
		kind         TEXT NOT NULL CHECK(kind IN ('task','note')),
		status       TEXT NOT NULL CHECK(status IN ('open','done','dropped')),
		priority     TEXT NOT NULL CHECK(priority IN ('low','normal','high')),
		color        TEXT NOT NULL DEFAULT '',
		start_at     TEXT,
		end_at       TEXT,
		all_day      INTEGER NOT NULL DEFAULT 0,
		completed_at TEXT,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_items_start_at ON items(start_at)`,
	`CREATE INDEX IF NOT EXISTS idx_items_status ON items(status)`,
	`CREATE TABLE IF NOT EXISTS item_vectors (
		item_id    TEXT PRIMARY KEY REFERENCES items(id) ON DELETE CASCADE,
		embedding  BLOB NOT NULL,
		dimensions INTEGER NOT NULL
	)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
