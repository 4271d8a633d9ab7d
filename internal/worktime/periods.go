package worktime

import (
	"time"

	"github.com/alexanderramin/punchclock/internal/domain"
)

// Totals are the raw period sums relative to a given instant.
type Totals struct {
	Today          time.Duration
	Week           time.Duration
	Month          time.Duration
	Year           time.Duration
	SinceReference time.Duration
}

// Aggregate sums day buckets into today/week/month/year and the total since
// ref (a calendar day; nil means everything counts). Weeks start on Monday
// and the first week of a year holds at least four of its days.
//
// With WeekRuleCalendarYear a bucket only counts for the week when it lies in
// now's calendar year and shares now's week number, so days of an ISO week
// that straddles New Year are split off. WeekRuleISO compares ISO year and
// week instead.
func Aggregate(days DayDurations, now time.Time, ref *time.Time, rule domain.WeekRule) Totals {
	loc := now.Location()
	todayKey := DayKey(now)
	nowYear, nowMonth := now.Year(), now.Month()
	nowISOYear, nowWeek := now.ISOWeek()

	var refDay time.Time
	if ref != nil {
		refDay = startOfDay(*ref, loc)
	}

	var t Totals
	for key, d := range days {
		day, err := time.ParseInLocation(domain.DateLayout, key, loc)
		if err != nil {
			continue
		}
		if key == todayKey {
			t.Today += d
		}
		if day.Year() == nowYear {
			t.Year += d
			if day.Month() == nowMonth {
				t.Month += d
			}
		}

		isoYear, week := day.ISOWeek()
		switch rule {
		case domain.WeekRuleISO:
			if isoYear == nowISOYear && week == nowWeek {
				t.Week += d
			}
		default:
			if day.Year() == nowYear && week == nowWeek {
				t.Week += d
			}
		}

		if ref == nil || !day.Before(refDay) {
			t.SinceReference += d
		}
	}
	return t
}
