package worktime

import (
	"time"
)

// DefaultDailyTargetMinutes is the required work per business day.
const DefaultDailyTargetMinutes = 480

// HolidayChecker reports public holidays. A nil checker excludes nothing.
type HolidayChecker interface {
	IsHoliday(date time.Time) bool
}

// BusinessDayPolicy decides which days count as business days. The zero
// value counts Monday through Friday.
type BusinessDayPolicy struct {
	Holidays HolidayChecker
}

// IsBusinessDay reports whether date is a working day under the policy.
func (p BusinessDayPolicy) IsBusinessDay(date time.Time) bool {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	if p.Holidays != nil && p.Holidays.IsHoliday(date) {
		return false
	}
	return true
}

// CountBusinessDays counts business days from from through to, both inclusive.
// Only the calendar day of each bound matters.
func CountBusinessDays(from, to time.Time, policy BusinessDayPolicy) int {
	day := startOfDay(from, from.Location())
	last := startOfDay(to, from.Location())
	n := 0
	for !day.After(last) {
		if policy.IsBusinessDay(day) {
			n++
		}
		day = day.AddDate(0, 0, 1)
	}
	return n
}

// NormalizeReferenceDate drops the time of day and moves a weekend date
// forward to the following Monday.
func NormalizeReferenceDate(d time.Time) time.Time {
	day := startOfDay(d, d.Location())
	switch day.Weekday() {
	case time.Saturday:
		return day.AddDate(0, 0, 2)
	case time.Sunday:
		return day.AddDate(0, 0, 1)
	}
	return day
}

type OvertimeInput struct {
	SinceReference     time.Duration
	ReferenceDate      *time.Time // already normalized
	BaselineMinutes    int
	Now                time.Time
	DailyTargetMinutes int
	Policy             BusinessDayPolicy
}

type OvertimeResult struct {
	CountingStart   time.Time
	BusinessDays    int
	RequiredMinutes int
	ActualMinutes   int
	BalanceMinutes  int
}

// Overtime compares worked minutes plus the carried baseline against the
// business days since the reference date, or since January 1 of now's year.
func Overtime(in OvertimeInput) OvertimeResult {
	loc := in.Now.Location()
	start := time.Date(in.Now.Year(), time.January, 1, 0, 0, 0, 0, loc)
	if in.ReferenceDate != nil {
		start = startOfDay(*in.ReferenceDate, loc)
	}
	target := in.DailyTargetMinutes
	if target <= 0 {
		target = DefaultDailyTargetMinutes
	}

	days := CountBusinessDays(start, in.Now, in.Policy)
	required := days * target
	actual := int(in.SinceReference/time.Minute) + in.BaselineMinutes
	return OvertimeResult{
		CountingStart:   start,
		BusinessDays:    days,
		RequiredMinutes: required,
		ActualMinutes:   actual,
		BalanceMinutes:  actual - required,
	}
}
