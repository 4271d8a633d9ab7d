package worktime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type holidaySet map[string]bool

func (h holidaySet) IsHoliday(date time.Time) bool { return h[DayKey(date)] }

func TestNormalizeReferenceDate(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"saturday moves two days", day(2024, 1, 6), day(2024, 1, 8)},
		{"sunday moves one day", day(2024, 1, 7), day(2024, 1, 8)},
		{"monday stays", day(2024, 1, 8), day(2024, 1, 8)},
		{"friday stays", day(2024, 1, 5), day(2024, 1, 5)},
		{"time of day dropped", time.Date(2024, 1, 3, 14, 0, 0, 0, time.UTC), day(2024, 1, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeReferenceDate(tt.in))
		})
	}
}

func TestCountBusinessDays(t *testing.T) {
	assert.Equal(t, 5, CountBusinessDays(day(2024, 1, 1), day(2024, 1, 7), BusinessDayPolicy{}))
	assert.Equal(t, 1, CountBusinessDays(day(2024, 1, 1), day(2024, 1, 1), BusinessDayPolicy{}))
	assert.Equal(t, 0, CountBusinessDays(day(2024, 1, 6), day(2024, 1, 7), BusinessDayPolicy{}))
	assert.Equal(t, 0, CountBusinessDays(day(2024, 1, 8), day(2024, 1, 1), BusinessDayPolicy{}))
	assert.Equal(t, 23, CountBusinessDays(day(2024, 1, 1), day(2024, 1, 31), BusinessDayPolicy{}))
}

func TestCountBusinessDays_HolidayPolicy(t *testing.T) {
	policy := BusinessDayPolicy{Holidays: holidaySet{"2024-01-01": true, "2024-01-06": true}}
	assert.Equal(t, 4, CountBusinessDays(day(2024, 1, 1), day(2024, 1, 7), policy))
}

func TestOvertime_DefaultsToStartOfYear(t *testing.T) {
	now := time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC)
	got := Overtime(OvertimeInput{SinceReference: 10 * time.Hour, Now: now})

	assert.Equal(t, day(2024, 1, 1), got.CountingStart)
	assert.Equal(t, 3, got.BusinessDays)
	assert.Equal(t, 1440, got.RequiredMinutes)
	assert.Equal(t, 600, got.ActualMinutes)
	assert.Equal(t, -840, got.BalanceMinutes)
}

func TestOvertime_BaselineAndFlooring(t *testing.T) {
	ref := day(2024, 1, 8)
	now := time.Date(2024, 1, 8, 20, 0, 0, 0, time.UTC)
	got := Overtime(OvertimeInput{
		SinceReference:  8*time.Hour + 59*time.Second,
		ReferenceDate:   &ref,
		BaselineMinutes: -15,
		Now:             now,
	})

	assert.Equal(t, 480, got.RequiredMinutes)
	assert.Equal(t, 465, got.ActualMinutes)
	assert.Equal(t, "-0:15", FormatBalance(got.BalanceMinutes))
}

func TestOvertime_Sign(t *testing.T) {
	ref := day(2024, 1, 8)
	now := time.Date(2024, 1, 8, 20, 0, 0, 0, time.UTC)

	under := Overtime(OvertimeInput{SinceReference: 8*time.Hour - time.Minute, ReferenceDate: &ref, Now: now})
	assert.Equal(t, "-0:01", FormatBalance(under.BalanceMinutes))

	exact := Overtime(OvertimeInput{SinceReference: 8 * time.Hour, ReferenceDate: &ref, Now: now})
	assert.Equal(t, "+0:00", FormatBalance(exact.BalanceMinutes))

	over := Overtime(OvertimeInput{SinceReference: 9 * time.Hour, ReferenceDate: &ref, Now: now})
	assert.Equal(t, "+1:00", FormatBalance(over.BalanceMinutes))
}

func TestOvertime_FutureReferenceRequiresNothing(t *testing.T) {
	ref := day(2024, 2, 5)
	now := time.Date(2024, 1, 8, 20, 0, 0, 0, time.UTC)
	got := Overtime(OvertimeInput{ReferenceDate: &ref, BaselineMinutes: 30, Now: now})

	assert.Equal(t, 0, got.RequiredMinutes)
	assert.Equal(t, 30, got.BalanceMinutes)
}

func TestOvertime_CustomDailyTarget(t *testing.T) {
	ref := day(2024, 1, 8)
	now := time.Date(2024, 1, 9, 20, 0, 0, 0, time.UTC)
	got := Overtime(OvertimeInput{ReferenceDate: &ref, Now: now, DailyTargetMinutes: 420})
	assert.Equal(t, 840, got.RequiredMinutes)
}
