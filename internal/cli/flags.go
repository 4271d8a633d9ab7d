package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/alexanderramin/punchclock/internal/worktime"
)

// instantFlag parses --at values. A bare "HH:MM" means that time today; full
// timestamps use the punch layout. The zone is the configured location.
type instantFlag struct {
	raw string
	loc func() *time.Location
	now func() time.Time
	at  *time.Time
}

var _ pflag.Value = (*instantFlag)(nil)

func (f *instantFlag) String() string { return f.raw }

func (f *instantFlag) Type() string { return "time" }

func (f *instantFlag) Set(s string) error {
	t, err := parseInstant(strings.TrimSpace(s), f.now(), f.loc())
	if err != nil {
		return err
	}
	f.raw = s
	f.at = &t
	return nil
}

// Value returns the parsed instant, or nil when the flag was not given.
func (f *instantFlag) Value() *time.Time { return f.at }

func parseInstant(s string, now time.Time, loc *time.Location) (time.Time, error) {
	if t, ok := worktime.ParseTimestamp(s, loc); ok {
		return t, nil
	}
	for _, layout := range []string{"15:04", "15:04:05"} {
		if clock, err := time.Parse(layout, s); err == nil {
			local := now.In(loc)
			return time.Date(local.Year(), local.Month(), local.Day(), clock.Hour(), clock.Minute(), clock.Second(), 0, loc), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time %q (use HH:MM or YYYY-MM-DD HH:MM)", s)
}

// parseBalance accepts "+H:MM", "-H:MM", "H:MM" or plain minutes.
func parseBalance(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty balance")
	}
	if m, err := strconv.Atoi(s); err == nil {
		return m, nil
	}
	sign := 1
	switch s[0] {
	case '-':
		sign = -1
		s = s[1:]
	case '+':
		s = s[1:]
	}
	hours, minutes, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("invalid balance %q (use +H:MM or minutes)", s)
	}
	h, err := strconv.Atoi(hours)
	if err != nil || h < 0 {
		return 0, fmt.Errorf("invalid hours in %q", s)
	}
	m, err := strconv.Atoi(minutes)
	if err != nil || m < 0 || m > 59 || len(minutes) != 2 {
		return 0, fmt.Errorf("invalid minutes in %q", s)
	}
	return sign * (h*60 + m), nil
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (use YYYY-MM-DD)", s)
	}
	return t, nil
}

// parseOnOff reads the switch values accepted by "settings set".
func parseOnOff(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "yes", "true", "1":
		return true, nil
	case "off", "no", "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("invalid switch %q (use on or off)", s)
}

type outputFormat = domain.OutputFormat

const (
	outputText = domain.OutputText
	outputJSON = domain.OutputJSON
	outputYAML = domain.OutputYAML
)

func parseOutputFormat(s string) (outputFormat, error) {
	switch f := domain.OutputFormat(strings.ToLower(s)); f {
	case outputText, outputJSON, outputYAML:
		return f, nil
	}
	return "", fmt.Errorf("invalid output %q (use text, json or yaml)", s)
}
