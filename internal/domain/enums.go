package domain

import (
	"fmt"
	"strings"
)

type PunchKind string

const (
	PunchStart PunchKind = "Start"
	PunchEnd   PunchKind = "End"
)

// ParsePunchKind accepts the stored spellings, the legacy "Ende" and lowercase CLI input.
func ParsePunchKind(s string) (PunchKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "start", "in":
		return PunchStart, nil
	case "end", "ende", "out", "stop":
		return PunchEnd, nil
	default:
		return "", fmt.Errorf("unknown punch kind %q", s)
	}
}

// Opposite returns the kind that would follow this one.
func (k PunchKind) Opposite() PunchKind {
	if k == PunchStart {
		return PunchEnd
	}
	return PunchStart
}

type StorageBackend string

const (
	StorageSQLite StorageBackend = "sqlite"
	StorageJSON   StorageBackend = "json"
)

type WeekRule string

const (
	// WeekRuleCalendarYear gates the week total by calendar year before comparing week numbers.
	WeekRuleCalendarYear WeekRule = "calendar-year"
	// WeekRuleISO compares ISO year and week together.
	WeekRuleISO WeekRule = "iso"
)

type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)
