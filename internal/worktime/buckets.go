package worktime

import (
	"time"

	"github.com/alexanderramin/punchclock/internal/domain"
)

// DayDurations maps a local calendar day ("2006-01-02") to the time worked on it.
type DayDurations map[string]time.Duration

// Total sums every bucket.
func (d DayDurations) Total() time.Duration {
	var total time.Duration
	for _, v := range d {
		total += v
	}
	return total
}

// DayKey renders the calendar day of t in t's location.
func DayKey(t time.Time) string {
	return t.Format(domain.DateLayout)
}

// BucketByDay attributes each interval to the local calendar days it covers,
// cutting at every midnight it crosses.
func BucketByDay(intervals []Interval, loc *time.Location) DayDurations {
	days := make(DayDurations)
	for _, iv := range intervals {
		start, end := iv.Start, iv.End
		if loc != nil {
			start, end = start.In(loc), end.In(loc)
		}
		for start.Before(end) {
			midnight := nextMidnight(start)
			if !midnight.Before(end) {
				days[DayKey(start)] += end.Sub(start)
				break
			}
			days[DayKey(start)] += midnight.Sub(start)
			start = midnight
		}
	}
	return days
}

func nextMidnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, t.Location())
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
