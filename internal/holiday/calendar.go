// Package holiday computes public holidays: fixed dates plus days relative
// to Easter Sunday.
package holiday

import (
	"sort"
	"time"
)

type Holiday struct {
	Date time.Time
	Name string
}

// Fixed is a holiday on the same month and day every year.
type Fixed struct {
	Month time.Month
	Day   int
	Name  string
}

// Floating is a holiday a number of days away from Easter Sunday.
type Floating struct {
	OffsetDays int
	Name       string
}

// Calendar is a regional set of holidays. The zero value has no holidays.
type Calendar struct {
	Fixed    []Fixed
	Floating []Floating
}

// Options toggles the holidays that only some regions observe.
type Options struct {
	Epiphany      bool
	CorpusChristi bool
}

// DefaultCalendar returns the German holidays observed in the default region.
func DefaultCalendar(opts Options) Calendar {
	cal := Calendar{
		Fixed: []Fixed{
			{time.January, 1, "Neujahr"},
			{time.May, 1, "Tag der Arbeit"},
			{time.October, 3, "Tag der Deutschen Einheit"},
			{time.November, 1, "Allerheiligen"},
			{time.December, 25, "1. Weihnachtstag"},
			{time.December, 26, "2. Weihnachtstag"},
		},
		Floating: []Floating{
			{-2, "Karfreitag"},
			{1, "Ostermontag"},
			{39, "Christi Himmelfahrt"},
			{50, "Pfingstmontag"},
		},
	}
	if opts.Epiphany {
		cal.Fixed = append(cal.Fixed, Fixed{time.January, 6, "Heilige Drei Könige"})
	}
	if opts.CorpusChristi {
		cal.Floating = append(cal.Floating, Floating{60, "Fronleichnam"})
	}
	return cal
}

// ForYear lists the year's holidays in ascending date order.
func (c Calendar) ForYear(year int) []Holiday {
	out := make([]Holiday, 0, len(c.Fixed)+len(c.Floating))
	for _, f := range c.Fixed {
		out = append(out, Holiday{Date: time.Date(year, f.Month, f.Day, 0, 0, 0, 0, time.UTC), Name: f.Name})
	}
	if len(c.Floating) > 0 {
		easter := Easter(year)
		for _, f := range c.Floating {
			out = append(out, Holiday{Date: easter.AddDate(0, 0, f.OffsetDays), Name: f.Name})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// Lookup finds the holiday on date's calendar day, in whatever location date carries.
func (c Calendar) Lookup(date time.Time) (Holiday, bool) {
	y, m, d := date.Date()
	for _, h := range c.ForYear(y) {
		if h.Date.Month() == m && h.Date.Day() == d {
			return h, true
		}
	}
	return Holiday{}, false
}

// IsHoliday reports whether date's calendar day is a holiday.
func (c Calendar) IsHoliday(date time.Time) bool {
	_, ok := c.Lookup(date)
	return ok
}

// Between lists holidays whose day lies in [from, to], inclusive.
func (c Calendar) Between(from, to time.Time) []Holiday {
	first := dayOf(from)
	last := dayOf(to)
	var out []Holiday
	for year := first.Year(); year <= last.Year(); year++ {
		for _, h := range c.ForYear(year) {
			if !h.Date.Before(first) && !h.Date.After(last) {
				out = append(out, h)
			}
		}
	}
	return out
}

// Upcoming returns the next n holidays on or after from's day, continuing
// into later years when needed.
func (c Calendar) Upcoming(from time.Time, n int) []Holiday {
	if n <= 0 || len(c.Fixed)+len(c.Floating) == 0 {
		return nil
	}
	first := dayOf(from)
	out := make([]Holiday, 0, n)
	for year := first.Year(); len(out) < n; year++ {
		for _, h := range c.ForYear(year) {
			if h.Date.Before(first) {
				continue
			}
			out = append(out, h)
			if len(out) == n {
				break
			}
		}
	}
	return out
}

func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
