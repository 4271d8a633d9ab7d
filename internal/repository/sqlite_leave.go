package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/punchclock/internal/db"
	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/google/uuid"
)

// SQLiteLeaveRepo implements LeaveRepo using a SQLite database.
type SQLiteLeaveRepo struct {
	db db.DBTX
}

// NewSQLiteLeaveRepo creates a new SQLiteLeaveRepo.
func NewSQLiteLeaveRepo(conn db.DBTX) *SQLiteLeaveRepo {
	return &SQLiteLeaveRepo{db: conn}
}

func (r *SQLiteLeaveRepo) Create(ctx context.Context, l *domain.LeaveEntry) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}
	query := `INSERT INTO leave_entries (id, from_date, to_date, business_days, created_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		l.ID,
		l.From.Format(domain.DateLayout),
		l.To.Format(domain.DateLayout),
		l.BusinessDays,
		l.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting leave entry: %w", err)
	}
	return nil
}

func (r *SQLiteLeaveRepo) List(ctx context.Context) ([]*domain.LeaveEntry, error) {
	query := `SELECT id, from_date, to_date, business_days, created_at
		FROM leave_entries ORDER BY from_date, created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing leave entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.LeaveEntry
	for rows.Next() {
		var (
			l                 domain.LeaveEntry
			from, to, created string
		)
		if err := rows.Scan(&l.ID, &from, &to, &l.BusinessDays, &created); err != nil {
			return nil, fmt.Errorf("scanning leave entry: %w", err)
		}
		fromDate, toDate := parseDate(from), parseDate(to)
		if fromDate == nil || toDate == nil {
			return nil, fmt.Errorf("leave entry %s has malformed dates %q..%q", l.ID, from, to)
		}
		l.From, l.To = *fromDate, *toDate
		l.CreatedAt = parseRFC3339(created)
		entries = append(entries, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating leave entries: %w", err)
	}
	return entries, nil
}

func (r *SQLiteLeaveRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM leave_entries`); err != nil {
		return fmt.Errorf("clearing leave entries: %w", err)
	}
	return nil
}
