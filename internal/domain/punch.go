package domain

import "time"

// TimestampLayout is the canonical textual form of a stored punch timestamp.
const TimestampLayout = "2006-01-02 15:04:05"

// DateLayout is the calendar-day form used for reference dates, leave ranges and day keys.
const DateLayout = "2006-01-02"

// PunchEvent is a single Start or End tap. The timestamp is kept in its
// textual form; the worktime engine decides whether it is usable.
type PunchEvent struct {
	ID         string
	Kind       PunchKind
	Timestamp  string
	HomeOffice bool
	CreatedAt  time.Time
}

// NewPunchEvent stamps a punch at the given instant, rendered in the instant's location.
func NewPunchEvent(kind PunchKind, at time.Time, homeOffice bool) *PunchEvent {
	return &PunchEvent{
		Kind:       kind,
		Timestamp:  at.Format(TimestampLayout),
		HomeOffice: homeOffice,
		CreatedAt:  time.Now().UTC(),
	}
}

// IsStart reports whether the punch opens a session.
func (p PunchEvent) IsStart() bool {
	return p.Kind == PunchStart
}
