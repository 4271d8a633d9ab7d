package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/punchclock/internal/domain"
)

// ValidateBundle checks a legacy bundle before conversion.
// Returns a slice of all validation errors found. Punch timestamps are not
// checked here; Convert drops the ones it cannot read.
func ValidateBundle(b *Bundle) []error {
	var errs []error
	errs = append(errs, validatePunches(b.Punches)...)
	errs = append(errs, validateSettings(b.Settings)...)
	errs = append(errs, validateLeave(b.Leave)...)
	return errs
}

func validatePunches(punches []PunchRecord) []error {
	var errs []error
	for i, p := range punches {
		if _, err := domain.ParsePunchKind(p.Typ); err != nil {
			errs = append(errs, fmt.Errorf("%s[%d].typ: invalid value %q", PunchFileName, i, p.Typ))
		}
	}
	return errs
}

func validateSettings(s *SettingsRecord) []error {
	if s == nil || s.StandDatum == "" {
		return nil
	}
	if _, err := time.Parse(domain.DateLayout, s.StandDatum); err != nil {
		return []error{fmt.Errorf("%s.standDatum: invalid date format %q (expected YYYY-MM-DD)", SettingsFileName, s.StandDatum)}
	}
	return nil
}

func validateLeave(entries []LeaveRecord) []error {
	var errs []error
	for i, l := range entries {
		from, fromErr := time.Parse(domain.DateLayout, l.Von)
		if fromErr != nil {
			errs = append(errs, fmt.Errorf("%s[%d].von: invalid date format %q (expected YYYY-MM-DD)", LeaveFileName, i, l.Von))
		}
		to, toErr := time.Parse(domain.DateLayout, l.Bis)
		if toErr != nil {
			errs = append(errs, fmt.Errorf("%s[%d].bis: invalid date format %q (expected YYYY-MM-DD)", LeaveFileName, i, l.Bis))
		}
		if fromErr == nil && toErr == nil && to.Before(from) {
			errs = append(errs, fmt.Errorf("%s[%d].bis %q must not be before von %q", LeaveFileName, i, l.Bis, l.Von))
		}
		if l.Tage < 0 {
			errs = append(errs, fmt.Errorf("%s[%d].tage: must not be negative", LeaveFileName, i))
		}
	}
	return errs
}
