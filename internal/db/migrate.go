package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent so the full
// list re-runs safely on every startup.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS mood_entries (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL,
		overall    REAL NOT NULL CHECK(overall >= 1 AND overall <= 10),
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_mood_entries_user_created
		ON mood_entries(user_id, created_at DESC)`,

	`CREATE TABLE IF NOT EXISTS crisis_alerts (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL,
		source     TEXT NOT NULL DEFAULT '',
		note       TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_crisis_alerts_user_created
		ON crisis_alerts(user_id, created_at DESC)`,

	`CREATE TABLE IF NOT EXISTS session_technique_tracking (
		id                  TEXT PRIMARY KEY,
		user_id             TEXT NOT NULL,
		session_id          TEXT NOT NULL DEFAULT '',
		technique_name      TEXT NOT NULL,
		user_response_score REAL NOT NULL CHECK(user_response_score >= 0 AND user_response_score <= 10),
		created_at          TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_technique_tracking_user_technique
		ON session_technique_tracking(user_id, technique_name, created_at DESC)`,

	`CREATE TABLE IF NOT EXISTS ai_routing_decisions (
		id                       TEXT PRIMARY KEY,
		user_id                  TEXT NOT NULL,
		session_id               TEXT NOT NULL,
		model_tag                TEXT NOT NULL,
		reasoning                TEXT NOT NULL DEFAULT '',
		priority                 INTEGER NOT NULL
		                         CHECK(priority IN (3, 4, 5)),
		effectiveness_prediction REAL NOT NULL,
		trigger_count            INTEGER NOT NULL DEFAULT 0,
		created_at               TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_routing_decisions_user_created
		ON ai_routing_decisions(user_id, created_at DESC)`,
}
