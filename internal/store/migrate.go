package store

import (
	"database/sql"
	"fmt"
)

func Migrate(db *sql.DB) error {
	schema := []string{
		// predictions: one row per distinct normalized input
		`CREATE TABLE IF NOT EXISTS predictions (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			text            TEXT NOT NULL,
			normalized      TEXT NOT NULL,
			hash            TEXT NOT NULL UNIQUE,
			label           TEXT NOT NULL,
			positive_score  INTEGER NOT NULL DEFAULT 0,
			negative_score  INTEGER NOT NULL DEFAULT 0,
			count           INTEGER NOT NULL DEFAULT 1,
			created_at      INTEGER NOT NULL,
			updated_at      INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_predictions_label ON predictions(label);`,
		`CREATE INDEX IF NOT EXISTS idx_predictions_updated ON predictions(updated_at);`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to run migration statement: %w", err)
		}
	}

	return nil
}
