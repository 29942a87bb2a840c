package db

import (
	"database/sql"
	"fmt"
	"strings"
)

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

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS change_journal (
		id            TEXT PRIMARY KEY,
		operation     TEXT NOT NULL,
		target_kind   TEXT NOT NULL DEFAULT '',
		target_id     TEXT NOT NULL DEFAULT '',
		plan_id       TEXT NOT NULL DEFAULT '',
		summary       TEXT NOT NULL DEFAULT '',
		document_path TEXT NOT NULL DEFAULT '',
		created_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_change_journal_created ON change_journal(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_change_journal_target ON change_journal(target_kind, target_id)`,
}
