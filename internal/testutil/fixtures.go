package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/punchclock/internal/domain"
)

// Punch options
type PunchOption func(*domain.PunchEvent)

func WithHomeOffice() PunchOption {
	return func(p *domain.PunchEvent) {
		p.HomeOffice = true
	}
}

func WithRawTimestamp(ts string) PunchOption {
	return func(p *domain.PunchEvent) {
		p.Timestamp = ts
	}
}

func NewTestPunch(kind domain.PunchKind, at time.Time, opts ...PunchOption) *domain.PunchEvent {
	p := domain.NewPunchEvent(kind, at, false)
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Day builds midnight of a calendar day in UTC.
func Day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// At builds a UTC instant.
func At(y int, m time.Month, d, hour, min int) time.Time {
	return time.Date(y, m, d, hour, min, 0, 0, time.UTC)
}

// PunchAppender is satisfied by every punch repository.
type PunchAppender interface {
	Append(ctx context.Context, p *domain.PunchEvent) error
}

// SeedWorkday appends a Start/End pair.
func SeedWorkday(t *testing.T, repo PunchAppender, from, to time.Time) {
	t.Helper()
	ctx := context.Background()
	if err := repo.Append(ctx, NewTestPunch(domain.PunchStart, from)); err != nil {
		t.Fatalf("seeding start punch: %v", err)
	}
	if err := repo.Append(ctx, NewTestPunch(domain.PunchEnd, to)); err != nil {
		t.Fatalf("seeding end punch: %v", err)
	}
}

// Leave options
type LeaveOption func(*domain.LeaveEntry)

func WithBusinessDays(n int) LeaveOption {
	return func(l *domain.LeaveEntry) {
		l.BusinessDays = n
	}
}

func NewTestLeave(from, to time.Time, opts ...LeaveOption) *domain.LeaveEntry {
	l := &domain.LeaveEntry{
		From:      from,
		To:        to,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}
