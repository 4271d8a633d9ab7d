package domain

import "time"

// Settings is the user-editable configuration the engine reads as a snapshot.
type Settings struct {
	BaselineMinutes  int
	ReferenceDate    *time.Time
	HomeOfficeActive bool
	UpdatedAt        time.Time
}

// DefaultSettings returns the values used when nothing was stored yet or the
// stored record could not be read.
func DefaultSettings() Settings {
	return Settings{}
}

// ReferenceDateString renders the reference day, or "" when unset.
func (s Settings) ReferenceDateString() string {
	if s.ReferenceDate == nil {
		return ""
	}
	return s.ReferenceDate.Format(DateLayout)
}
