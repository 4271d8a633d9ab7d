package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/punchclock/internal/db"
	"github.com/alexanderramin/punchclock/internal/domain"
)

// SQLiteSettingsRepo implements SettingsRepo using a SQLite database.
type SQLiteSettingsRepo struct {
	db db.DBTX
}

// NewSQLiteSettingsRepo creates a new SQLiteSettingsRepo.
func NewSQLiteSettingsRepo(conn db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: conn}
}

func (r *SQLiteSettingsRepo) Get(ctx context.Context) (domain.Settings, error) {
	query := `SELECT baseline_minutes, reference_date, home_office_active, updated_at
		FROM settings WHERE id = 1`
	row := r.db.QueryRowContext(ctx, query)

	var (
		s          domain.Settings
		refDate    sql.NullString
		homeOffice int
		updatedAt  string
	)
	err := row.Scan(&s.BaselineMinutes, &refDate, &homeOffice, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.DefaultSettings(), nil
		}
		return domain.Settings{}, fmt.Errorf("scanning settings: %w", err)
	}
	s.ReferenceDate = parseNullableDate(refDate)
	s.HomeOfficeActive = intToBool(homeOffice)
	s.UpdatedAt = parseRFC3339(updatedAt)
	return s, nil
}

func (r *SQLiteSettingsRepo) Save(ctx context.Context, s domain.Settings) error {
	query := `INSERT OR REPLACE INTO settings (id, baseline_minutes, reference_date, home_office_active, updated_at)
		VALUES (1, ?, ?, ?, ?)`
	updatedAt := s.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx, query,
		s.BaselineMinutes,
		nullableDateToString(s.ReferenceDate),
		boolToInt(s.HomeOfficeActive),
		updatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting settings: %w", err)
	}
	return nil
}
