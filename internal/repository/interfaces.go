package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/punchclock/internal/db"
	"github.com/alexanderramin/punchclock/internal/domain"
)

// ErrNotFound is wrapped by every lookup that finds no row or record.
var ErrNotFound = errors.New("not found")

// PunchRepo is the append-only punch history.
type PunchRepo interface {
	Append(ctx context.Context, p *domain.PunchEvent) error
	// List returns punches in the order they were appended.
	List(ctx context.Context) ([]*domain.PunchEvent, error)
	// Last returns the most recently appended punch.
	Last(ctx context.Context) (*domain.PunchEvent, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

// SettingsRepo stores the single settings record. Get returns defaults when
// nothing was saved yet.
type SettingsRepo interface {
	Get(ctx context.Context) (domain.Settings, error)
	Save(ctx context.Context, s domain.Settings) error
}

type LeaveRepo interface {
	Create(ctx context.Context, l *domain.LeaveEntry) error
	List(ctx context.Context) ([]*domain.LeaveEntry, error)
	DeleteAll(ctx context.Context) error
}

// Stores bundles one backend's repositories.
type Stores struct {
	Punches  PunchRepo
	Settings SettingsRepo
	Leave    LeaveRepo
}

// NewSQLiteStores returns SQLite repositories sharing one connection or
// transaction.
func NewSQLiteStores(conn db.DBTX) Stores {
	return Stores{
		Punches:  NewSQLitePunchRepo(conn),
		Settings: NewSQLiteSettingsRepo(conn),
		Leave:    NewSQLiteLeaveRepo(conn),
	}
}
