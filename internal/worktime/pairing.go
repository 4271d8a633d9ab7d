package worktime

import (
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/punchclock/internal/domain"
)

// Interval is a closed span of work. End is strictly after Start.
type Interval struct {
	Start time.Time
	End   time.Time
}

func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// OpenSession describes a session that is still running at computation time.
// Since is optional; when zero the pairing cursor is used as the start.
type OpenSession struct {
	Active bool
	Since  time.Time
}

var timestampLayouts = []string{
	domain.TimestampLayout,
	"2006-01-02 15:04",
}

// ParseTimestamp reads a punch timestamp with or without seconds in loc.
func ParseTimestamp(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

type stampedPunch struct {
	at   time.Time
	kind domain.PunchKind
}

// PairEvents pairs punches into closed intervals. Unparsable timestamps are
// dropped; a repeated Start replaces the pending one; an End without a
// pending Start, or not after it, is ignored. If a Start is still pending and
// the session is active, a final interval up to now is appended.
func PairEvents(events []domain.PunchEvent, open OpenSession, now time.Time, loc *time.Location) []Interval {
	if loc == nil {
		loc = now.Location()
	}

	punches := make([]stampedPunch, 0, len(events))
	for _, ev := range events {
		at, ok := ParseTimestamp(ev.Timestamp, loc)
		if !ok {
			continue
		}
		punches = append(punches, stampedPunch{at: at, kind: ev.Kind})
	}
	sort.SliceStable(punches, func(i, j int) bool {
		return punches[i].at.Before(punches[j].at)
	})

	var (
		intervals []Interval
		cursor    *time.Time
	)
	for i := range punches {
		p := punches[i]
		switch p.kind {
		case domain.PunchStart:
			cursor = &p.at
		case domain.PunchEnd:
			if cursor != nil && p.at.After(*cursor) {
				intervals = append(intervals, Interval{Start: *cursor, End: p.at})
				cursor = nil
			}
		}
	}

	if cursor != nil && open.Active {
		start := *cursor
		if !open.Since.IsZero() {
			start = open.Since
		}
		if now.After(start) {
			intervals = append(intervals, Interval{Start: start, End: now})
		}
	}
	return intervals
}

// CurrentSession derives the open session from the history: the session is
// active when the chronologically last readable punch is a Start.
func CurrentSession(events []domain.PunchEvent, loc *time.Location) OpenSession {
	var (
		last  time.Time
		kind  domain.PunchKind
		found bool
	)
	for _, ev := range events {
		at, ok := ParseTimestamp(ev.Timestamp, loc)
		if !ok {
			continue
		}
		// Later entries win ties, matching the stable sort in PairEvents.
		if !found || !at.Before(last) {
			last, kind, found = at, ev.Kind, true
		}
	}
	if !found || kind != domain.PunchStart {
		return OpenSession{}
	}
	return OpenSession{Active: true, Since: last}
}
