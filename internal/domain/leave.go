package domain

import (
	"fmt"
	"time"
)

// LeaveEntry is a booked vacation range. BusinessDays is fixed at creation.
type LeaveEntry struct {
	ID           string
	From         time.Time
	To           time.Time
	BusinessDays int
	CreatedAt    time.Time
}

// Validate checks that the range is ordered.
func (l LeaveEntry) Validate() error {
	if l.From.IsZero() || l.To.IsZero() {
		return fmt.Errorf("leave range requires both from and to")
	}
	if l.To.Before(l.From) {
		return fmt.Errorf("leave ends (%s) before it starts (%s)", l.To.Format(DateLayout), l.From.Format(DateLayout))
	}
	return nil
}

// StartsIn reports whether the entry is booked against the given year.
func (l LeaveEntry) StartsIn(year int) bool {
	return l.From.Year() == year
}

// LeaveBalance summarizes taken and remaining vacation days against an allowance.
type LeaveBalance struct {
	Year      int
	Allowance int
	Taken     int
	Remaining int
}

// RangeString renders the range as "from..to", or a single date for one-day leave.
func (l LeaveEntry) RangeString() string {
	from := l.From.Format(DateLayout)
	if l.To.Equal(l.From) {
		return from
	}
	return from + ".." + l.To.Format(DateLayout)
}
