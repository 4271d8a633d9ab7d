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

type statusService struct {
	stores   repository.Stores
	opts     Options
	observer UseCaseObserver
}

func NewStatusService(stores repository.Stores, opts Options, observers ...UseCaseObserver) StatusService {
	return &statusService{
		stores:   stores,
		opts:     opts,
		observer: combineObservers(observers),
	}
}

// GetStatus reads one snapshot of punches, settings and leave, and runs the
// engine over it.
func (s *statusService) GetStatus(ctx context.Context, req app.StatusRequest) (resp *app.StatusResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer observe(ctx, s.observer, "status.get", startedAt, fields, &err)

	now := s.opts.now(req.Now)
	loc := s.opts.location()

	punches, err := s.stores.Punches.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing punches: %w", err)
	}
	settings, err := s.stores.Settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	leave, err := s.stores.Leave.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing leave: %w", err)
	}

	events := derefPunches(punches)
	open := worktime.CurrentSession(events, loc)
	result := worktime.Compute(worktime.Input{
		Events:             events,
		Settings:           settings,
		Open:               open,
		Now:                now,
		Location:           loc,
		WeekRule:           s.opts.WeekRule,
		DailyTargetMinutes: s.opts.DailyTargetMinutes,
		Policy:             s.opts.businessDayPolicy(),
	})
	fields["punches"] = len(events)
	fields["active"] = open.Active

	resp = &app.StatusResponse{
		GeneratedAt:     now,
		Active:          open.Active,
		HomeOffice:      settings.HomeOfficeActive,
		Today:           periodView(result.Totals.Today),
		Week:            periodView(result.Totals.Week),
		Month:           periodView(result.Totals.Month),
		Year:            periodView(result.Totals.Year),
		SinceReference:  periodView(result.Totals.SinceReference),
		BaselineMinutes: settings.BaselineMinutes,
		ReferenceDate:   result.ReferenceDate,
		Leave:           leaveBalance(leave, now.Year(), s.opts.AnnualLeaveDays),
		PunchCount:      len(events),
		Overtime: app.OvertimeView{
			BalanceMinutes:  result.Overtime.BalanceMinutes,
			Text:            result.Formatted.Overtime,
			RequiredMinutes: result.Overtime.RequiredMinutes,
			ActualMinutes:   result.Overtime.ActualMinutes,
			BusinessDays:    result.Overtime.BusinessDays,
			CountingStart:   result.Overtime.CountingStart,
		},
	}
	if open.Active {
		since := open.Since
		resp.ActiveSince = &since
	}
	if next := s.opts.Holidays.Upcoming(now, 1); len(next) > 0 {
		resp.NextHoliday = &app.HolidayView{Date: next[0].Date, Name: next[0].Name}
	}
	return resp, nil
}

func periodView(d time.Duration) app.PeriodView {
	return app.PeriodView{
		Duration: d,
		Text:     worktime.FormatDuration(d),
		Hours:    worktime.DecimalHours(d),
	}
}

func leaveBalance(entries []*domain.LeaveEntry, year, allowance int) domain.LeaveBalance {
	b := domain.LeaveBalance{Year: year, Allowance: allowance}
	for _, l := range entries {
		if l.StartsIn(year) {
			b.Taken += l.BusinessDays
		}
	}
	b.Remaining = allowance - b.Taken
	return b
}
