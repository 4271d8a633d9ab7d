package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/punchclock/internal/app"
	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/alexanderramin/punchclock/internal/repository"
	"github.com/alexanderramin/punchclock/internal/worktime"
)

type leaveService struct {
	leave    repository.LeaveRepo
	opts     Options
	observer UseCaseObserver
}

func NewLeaveService(leave repository.LeaveRepo, opts Options, observers ...UseCaseObserver) LeaveService {
	return &leaveService{leave: leave, opts: opts, observer: combineObservers(observers)}
}

// Add books a leave range. The business-day count is computed once, with the
// same weekday and holiday rules the overtime balance uses.
func (s *leaveService) Add(ctx context.Context, req app.AddLeaveRequest) (entry *domain.LeaveEntry, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer observe(ctx, s.observer, "leave.add", startedAt, fields, &err)

	entry = &domain.LeaveEntry{
		From:      dateOnly(req.From),
		To:        dateOnly(req.To),
		CreatedAt: time.Now().UTC(),
	}
	if err := entry.Validate(); err != nil {
		return nil, &ValidationError{Field: "leave", Message: err.Error()}
	}
	entry.BusinessDays = worktime.CountBusinessDays(entry.From, entry.To, s.opts.businessDayPolicy())
	fields["business_days"] = entry.BusinessDays

	if err := s.leave.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("creating leave entry: %w", err)
	}
	return entry, nil
}

func (s *leaveService) List(ctx context.Context) ([]*domain.LeaveEntry, error) {
	entries, err := s.leave.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing leave: %w", err)
	}
	return entries, nil
}

func (s *leaveService) Clear(ctx context.Context) (err error) {
	startedAt := time.Now()
	defer observe(ctx, s.observer, "leave.clear", startedAt, nil, &err)

	if err := s.leave.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clearing leave: %w", err)
	}
	return nil
}

func (s *leaveService) Balance(ctx context.Context, year int) (domain.LeaveBalance, error) {
	entries, err := s.leave.List(ctx)
	if err != nil {
		return domain.LeaveBalance{}, fmt.Errorf("listing leave: %w", err)
	}
	return leaveBalance(entries, year, s.opts.AnnualLeaveDays), nil
}

func dateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
