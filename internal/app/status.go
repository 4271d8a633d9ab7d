package app

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/alexanderramin/punchclock/internal/domain"
)

type StatusRequest struct {
	Now *time.Time
}

// PeriodView is one aggregated period. Text is "" when nothing was worked.
type PeriodView struct {
	Duration time.Duration
	Text     string
	Hours    decimal.Decimal
}

type OvertimeView struct {
	BalanceMinutes  int
	Text            string
	RequiredMinutes int
	ActualMinutes   int
	BusinessDays    int
	CountingStart   time.Time
}

type HolidayView struct {
	Date time.Time
	Name string
}

type StatusResponse struct {
	GeneratedAt     time.Time
	Active          bool
	ActiveSince     *time.Time
	HomeOffice      bool
	Today           PeriodView
	Week            PeriodView
	Month           PeriodView
	Year            PeriodView
	SinceReference  PeriodView
	Overtime        OvertimeView
	BaselineMinutes int
	ReferenceDate   *time.Time
	Leave           domain.LeaveBalance
	NextHoliday     *HolidayView
	PunchCount      int
}

// WidgetLine is the single-line summary shown on small surfaces.
func (r StatusResponse) WidgetLine() string {
	today := r.Today.Text
	if today == "" {
		today = "0h 0min"
	}
	return "Heute: " + today
}
