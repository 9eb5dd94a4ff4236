package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate brings the schema up to date. Statements are re-run on every open,
// so each one must be idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := backfillUpdatedAt(db); err != nil {
		return fmt.Errorf("backfilling updated_at: %w", err)
	}
	return nil
}

// backfillUpdatedAt stamps rows written before edits were tracked.
func backfillUpdatedAt(db *sql.DB) error {
	_, err := db.Exec(`UPDATE clock_events SET updated_at = created_at WHERE updated_at IS NULL`)
	return err
}

// The timestamp column holds the punch time exactly as it was recorded.
// Legacy imports may carry malformed values; readers normalize them.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS clock_events (
		id         TEXT PRIMARY KEY,
		worker     TEXT NOT NULL,
		action     TEXT NOT NULL,
		timestamp  TEXT NOT NULL,
		project    TEXT NOT NULL DEFAULT '',
		note       TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_clock_events_worker ON clock_events(worker)`,
	`CREATE INDEX IF NOT EXISTS idx_clock_events_timestamp ON clock_events(timestamp)`,

	`ALTER TABLE clock_events ADD COLUMN photo_ref TEXT NOT NULL DEFAULT ''`,
	`ALTER TABLE clock_events ADD COLUMN updated_at TEXT`,
}
