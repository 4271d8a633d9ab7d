package repository

import (
	"database/sql"
	"time"

	"github.com/alexanderramin/punchclock/internal/domain"
)

// parseNullableDate parses a sql.NullString holding a calendar day.
// Returns nil if the value is NULL, empty, or fails to parse.
func parseNullableDate(s sql.NullString) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	return parseDate(s.String)
}

func parseDate(s string) *time.Time {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

// nullableDateToString converts a *time.Time to a calendar-day value for storage.
// Returns nil (SQL NULL) if the pointer is nil.
func nullableDateToString(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.Format(domain.DateLayout)
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}

func parseRFC3339(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}
