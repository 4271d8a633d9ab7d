package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/punchclock/internal/db"
	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/google/uuid"
)

// SQLitePunchRepo implements PunchRepo using a SQLite database.
type SQLitePunchRepo struct {
	db db.DBTX
}

// NewSQLitePunchRepo creates a new SQLitePunchRepo.
func NewSQLitePunchRepo(conn db.DBTX) *SQLitePunchRepo {
	return &SQLitePunchRepo{db: conn}
}

func (r *SQLitePunchRepo) Append(ctx context.Context, p *domain.PunchEvent) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	query := `INSERT INTO punch_events (id, kind, ts, home_office, created_at, seq)
		VALUES (?, ?, ?, ?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM punch_events))`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		string(p.Kind),
		p.Timestamp,
		boolToInt(p.HomeOffice),
		p.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting punch: %w", err)
	}
	return nil
}

func (r *SQLitePunchRepo) List(ctx context.Context) ([]*domain.PunchEvent, error) {
	query := `SELECT id, kind, ts, home_office, created_at FROM punch_events ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing punches: %w", err)
	}
	defer rows.Close()

	var punches []*domain.PunchEvent
	for rows.Next() {
		p, err := scanPunch(rows)
		if err != nil {
			return nil, err
		}
		punches = append(punches, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating punches: %w", err)
	}
	return punches, nil
}

func (r *SQLitePunchRepo) Last(ctx context.Context) (*domain.PunchEvent, error) {
	query := `SELECT id, kind, ts, home_office, created_at FROM punch_events ORDER BY seq DESC LIMIT 1`
	p, err := scanPunch(r.db.QueryRowContext(ctx, query))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("last punch: %w", ErrNotFound)
		}
		return nil, err
	}
	return p, nil
}

func (r *SQLitePunchRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM punch_events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting punch: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted punch: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("punch %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLitePunchRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM punch_events`); err != nil {
		return fmt.Errorf("clearing punches: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPunch(row rowScanner) (*domain.PunchEvent, error) {
	var (
		p          domain.PunchEvent
		kind       string
		homeOffice int
		createdAt  string
	)
	if err := row.Scan(&p.ID, &kind, &p.Timestamp, &homeOffice, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning punch: %w", err)
	}
	p.Kind = domain.PunchKind(kind)
	p.HomeOffice = intToBool(homeOffice)
	p.CreatedAt = parseRFC3339(createdAt)
	return &p, nil
}
