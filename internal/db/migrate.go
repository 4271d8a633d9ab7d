package db

import (
	"database/sql"
	"fmt"
	"strings"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS punch_events (
		id          TEXT PRIMARY KEY,
		kind        TEXT NOT NULL CHECK(kind IN ('Start','End','Ende')),
		ts          TEXT NOT NULL,
		home_office INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_punch_events_ts ON punch_events(ts)`,
	`ALTER TABLE punch_events ADD COLUMN seq INTEGER NOT NULL DEFAULT 0`,
	`CREATE INDEX IF NOT EXISTS idx_punch_events_seq ON punch_events(seq)`,
	`CREATE TABLE IF NOT EXISTS settings (
		id                 INTEGER PRIMARY KEY CHECK(id = 1),
		baseline_minutes   INTEGER NOT NULL DEFAULT 0,
		reference_date     TEXT,
		home_office_active INTEGER NOT NULL DEFAULT 0,
		updated_at         TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS leave_entries (
		id            TEXT PRIMARY KEY,
		from_date     TEXT NOT NULL,
		to_date       TEXT NOT NULL,
		business_days INTEGER NOT NULL DEFAULT 0,
		created_at    TEXT NOT NULL,
		CHECK(to_date >= from_date)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_leave_entries_from ON leave_entries(from_date)`,
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
	if err := migrateBackfillPunchSeq(db); err != nil {
		return fmt.Errorf("backfilling punch seq values: %w", err)
	}
	if err := migrateLegacyEndKind(db); err != nil {
		return fmt.Errorf("normalizing legacy punch kinds: %w", err)
	}
	return nil
}

// migrateBackfillPunchSeq numbers punches stored before seq existed in their
// original insertion order.
func migrateBackfillPunchSeq(db *sql.DB) error {
	var missing int
	if err := db.QueryRow(`SELECT COUNT(*) FROM punch_events WHERE seq = 0`).Scan(&missing); err != nil {
		return fmt.Errorf("counting unsequenced punches: %w", err)
	}
	if missing == 0 {
		return nil
	}
	var base int64
	if err := db.QueryRow(`SELECT COALESCE(MAX(seq), 0) FROM punch_events`).Scan(&base); err != nil {
		return fmt.Errorf("reading max seq: %w", err)
	}
	_, err := db.Exec(`
		UPDATE punch_events
		SET seq = ? + (SELECT COUNT(*) FROM punch_events p2 WHERE p2.rowid <= punch_events.rowid)
		WHERE seq = 0`, base)
	return err
}

func migrateLegacyEndKind(db *sql.DB) error {
	_, err := db.Exec(`UPDATE punch_events SET kind = 'End' WHERE kind = 'Ende'`)
	return err
}
