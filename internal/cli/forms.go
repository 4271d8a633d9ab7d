package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/punchclock/internal/cli/formatter"
	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/alexanderramin/punchclock/internal/worktime"
)

// punchclockHuhTheme styles forms with the formatter palette. The forms only
// use inputs and confirms, so select styles keep the base theme.
func punchclockHuhTheme() *huh.Theme {
	t := huh.ThemeBase()
	accent := lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	dim := lipgloss.NewStyle().Foreground(formatter.ColorDim)
	fg := lipgloss.NewStyle().Foreground(formatter.ColorFg)

	t.Focused.Title = accent.Bold(true)
	t.Focused.Description = dim
	t.Focused.ErrorMessage = formatter.StyleRed
	t.Focused.ErrorIndicator = formatter.StyleRed
	t.Focused.FocusedButton = fg.Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = dim.Padding(0, 1)
	t.Focused.TextInput.Cursor = accent
	t.Focused.TextInput.Prompt = accent
	t.Focused.TextInput.Text = fg
	t.Focused.TextInput.Placeholder = dim

	t.Blurred.Title = dim
	t.Blurred.Description = dim
	t.Blurred.TextInput.Prompt = dim
	t.Blurred.TextInput.Text = dim

	return t
}

// settingsFormValues holds the editable text of the settings form.
type settingsFormValues struct {
	Baseline      string
	ReferenceDate string
	HomeOffice    bool
}

func newSettingsFormValues(s domain.Settings) *settingsFormValues {
	return &settingsFormValues{
		Baseline:      worktime.FormatBalance(s.BaselineMinutes),
		ReferenceDate: s.ReferenceDateString(),
		HomeOffice:    s.HomeOfficeActive,
	}
}

func settingsForm(v *settingsFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Baseline (+H:MM)").
				Description("Overtime carried in from before the reference date").
				Placeholder("+0:00").
				Value(&v.Baseline).
				Validate(validateBalance),
			huh.NewInput().
				Title("Reference date (YYYY-MM-DD, blank for Jan 1)").
				Placeholder("2026-01-01").
				Value(&v.ReferenceDate).
				Validate(validateOptionalDate),
			huh.NewConfirm().
				Title("Home office by default?").
				Value(&v.HomeOffice),
		),
	).WithTheme(punchclockHuhTheme()).WithShowHelp(false)
}

type leaveFormValues struct {
	From string
	To   string
}

func leaveForm(v *leaveFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("First day off (YYYY-MM-DD)").
				Value(&v.From).
				Validate(validateRequiredDate),
			huh.NewInput().
				Title("Last day off (YYYY-MM-DD, blank for a single day)").
				Value(&v.To).
				Validate(validateOptionalDate),
		),
	).WithTheme(punchclockHuhTheme()).WithShowHelp(false)
}

func confirmForm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(punchclockHuhTheme()).WithShowHelp(false)
}

func validateBalance(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	_, err := parseBalance(s)
	return err
}

// validateOptionalDate accepts empty or YYYY-MM-DD.
func validateOptionalDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := time.Parse(domain.DateLayout, strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

func validateRequiredDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("a date is required")
	}
	return validateOptionalDate(s)
}
