package worktime

import (
	"time"

	"github.com/alexanderramin/punchclock/internal/domain"
)

// Input is a consistent snapshot of everything a computation needs.
type Input struct {
	Events             []domain.PunchEvent
	Settings           domain.Settings
	Open               OpenSession
	Now                time.Time
	Location           *time.Location
	WeekRule           domain.WeekRule
	DailyTargetMinutes int
	Policy             BusinessDayPolicy
}

// Formatted holds the display strings for a Result.
type Formatted struct {
	Today          string
	Week           string
	Month          string
	Year           string
	SinceReference string
	Overtime       string
}

type Result struct {
	Totals        Totals
	Overtime      OvertimeResult
	Formatted     Formatted
	Days          DayDurations
	Intervals     []Interval
	ReferenceDate *time.Time
}

// Compute runs the whole pipeline for one snapshot. It never fails; an
// empty history yields empty duration strings and "+0:00".
func Compute(in Input) Result {
	loc := in.Location
	if loc == nil {
		loc = in.Now.Location()
	}
	now := in.Now.In(loc)

	var ref *time.Time
	if in.Settings.ReferenceDate != nil {
		r := *in.Settings.ReferenceDate
		normalized := NormalizeReferenceDate(time.Date(r.Year(), r.Month(), r.Day(), 0, 0, 0, 0, loc))
		ref = &normalized
	}

	if len(in.Events) == 0 {
		return Result{
			Days:          DayDurations{},
			ReferenceDate: ref,
			Formatted:     Formatted{Overtime: FormatBalance(0)},
		}
	}

	intervals := PairEvents(in.Events, in.Open, now, loc)
	days := BucketByDay(intervals, loc)
	totals := Aggregate(days, now, ref, in.WeekRule)
	ot := Overtime(OvertimeInput{
		SinceReference:     totals.SinceReference,
		ReferenceDate:      ref,
		BaselineMinutes:    in.Settings.BaselineMinutes,
		Now:                now,
		DailyTargetMinutes: in.DailyTargetMinutes,
		Policy:             in.Policy,
	})

	return Result{
		Totals:    totals,
		Overtime:  ot,
		Days:      days,
		Intervals: intervals,
		Formatted: Formatted{
			Today:          FormatDuration(totals.Today),
			Week:           FormatDuration(totals.Week),
			Month:          FormatDuration(totals.Month),
			Year:           FormatDuration(totals.Year),
			SinceReference: FormatDuration(totals.SinceReference),
			Overtime:       FormatBalance(ot.BalanceMinutes),
		},
		ReferenceDate: ref,
	}
}
