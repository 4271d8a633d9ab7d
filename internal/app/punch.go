package app

import (
	"time"

	"github.com/alexanderramin/punchclock/internal/domain"
)

// PunchRequest records a punch. A nil Kind toggles: Start when no session is
// open, End otherwise. HomeOffice nil takes the flag from the settings.
type PunchRequest struct {
	Kind       *domain.PunchKind
	At         *time.Time
	HomeOffice *bool
	Force      bool
}

type PunchResponse struct {
	Punch  *domain.PunchEvent
	Active bool
	// Worked is the length of the session an End punch just closed.
	Worked time.Duration
}
