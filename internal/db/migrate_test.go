package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	for _, table := range []string{"punch_events", "settings", "leave_entries"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	for _, idx := range []string{"idx_punch_events_ts", "idx_punch_events_seq", "idx_leave_entries_from"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_SettingsIsSingleRow(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO settings (id, updated_at) VALUES (1, '2024-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO settings (id, updated_at) VALUES (2, '2024-01-01T00:00:00Z')`)
	assert.Error(t, err)
}

func TestMigrate_LeaveRangeMustBeOrdered(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO leave_entries (id, from_date, to_date, business_days, created_at)
		VALUES ('l1', '2024-05-10', '2024-05-06', 0, '2024-01-01T00:00:00Z')`)
	assert.Error(t, err)
}
