package holiday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEaster_KnownDates(t *testing.T) {
	known := map[int]time.Time{
		2024: date(2024, time.March, 31),
		2025: date(2025, time.April, 20),
		2026: date(2026, time.April, 5),
		2019: date(2019, time.April, 21),
		2008: date(2008, time.March, 23),
		2000: date(2000, time.April, 23),
		2038: date(2038, time.April, 25),
		1818: date(1818, time.March, 22),
	}
	for year, want := range known {
		assert.Equal(t, want, Easter(year), "year %d", year)
	}
}

func TestEaster_AlwaysSundayInWindow(t *testing.T) {
	for year := 1900; year <= 2200; year++ {
		e := Easter(year)
		require.Equal(t, time.Sunday, e.Weekday(), "year %d", year)
		require.False(t, e.Before(date(year, time.March, 22)), "year %d", year)
		require.False(t, e.After(date(year, time.April, 25)), "year %d", year)
	}
}

func TestDefaultCalendar_2024(t *testing.T) {
	cal := DefaultCalendar(Options{CorpusChristi: true})
	got := cal.ForYear(2024)

	want := []Holiday{
		{date(2024, time.January, 1), "Neujahr"},
		{date(2024, time.March, 29), "Karfreitag"},
		{date(2024, time.April, 1), "Ostermontag"},
		{date(2024, time.May, 1), "Tag der Arbeit"},
		{date(2024, time.May, 9), "Christi Himmelfahrt"},
		{date(2024, time.May, 20), "Pfingstmontag"},
		{date(2024, time.May, 30), "Fronleichnam"},
		{date(2024, time.October, 3), "Tag der Deutschen Einheit"},
		{date(2024, time.November, 1), "Allerheiligen"},
		{date(2024, time.December, 25), "1. Weihnachtstag"},
		{date(2024, time.December, 26), "2. Weihnachtstag"},
	}
	assert.Equal(t, want, got)
}

func TestDefaultCalendar_Options(t *testing.T) {
	plain := DefaultCalendar(Options{})
	assert.False(t, plain.IsHoliday(date(2024, time.January, 6)))
	assert.False(t, plain.IsHoliday(date(2024, time.May, 30)))
	assert.Len(t, plain.ForYear(2024), 10)

	full := DefaultCalendar(Options{Epiphany: true, CorpusChristi: true})
	h, ok := full.Lookup(date(2024, time.January, 6))
	require.True(t, ok)
	assert.Equal(t, "Heilige Drei Könige", h.Name)
	assert.True(t, full.IsHoliday(date(2024, time.May, 30)))
	assert.Len(t, full.ForYear(2024), 12)
}

func TestCalendar_LookupIgnoresTimeAndLocation(t *testing.T) {
	cal := DefaultCalendar(Options{})
	plusTwo := time.FixedZone("UTC+2", 2*60*60)
	h, ok := cal.Lookup(time.Date(2024, time.December, 25, 23, 45, 0, 0, plusTwo))
	require.True(t, ok)
	assert.Equal(t, "1. Weihnachtstag", h.Name)
	assert.False(t, cal.IsHoliday(date(2024, time.December, 27)))
}

func TestCalendar_Upcoming_SpansYearEnd(t *testing.T) {
	cal := DefaultCalendar(Options{})
	got := cal.Upcoming(time.Date(2024, time.December, 20, 15, 0, 0, 0, time.UTC), 4)

	require.Len(t, got, 4)
	assert.Equal(t, "1. Weihnachtstag", got[0].Name)
	assert.Equal(t, "2. Weihnachtstag", got[1].Name)
	assert.Equal(t, date(2025, time.January, 1), got[2].Date)
	assert.Equal(t, date(2025, time.April, 18), got[3].Date)
}

func TestCalendar_Upcoming_IncludesToday(t *testing.T) {
	cal := DefaultCalendar(Options{})
	got := cal.Upcoming(date(2024, time.May, 1), 1)
	require.Len(t, got, 1)
	assert.Equal(t, "Tag der Arbeit", got[0].Name)
}

func TestCalendar_EmptyCalendar(t *testing.T) {
	var cal Calendar
	assert.Empty(t, cal.ForYear(2024))
	assert.Nil(t, cal.Upcoming(date(2024, time.May, 1), 3))
	assert.False(t, cal.IsHoliday(date(2024, time.January, 1)))
}

func TestCalendar_Between(t *testing.T) {
	cal := DefaultCalendar(Options{})
	got := cal.Between(date(2024, time.December, 24), date(2025, time.January, 1))
	require.Len(t, got, 3)
	assert.Equal(t, "Neujahr", got[2].Name)
}
