package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/punchclock/internal/app"
	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/alexanderramin/punchclock/internal/worktime"
)

const statusProgressBarWidth = 20

// FormatStatus formats a StatusResponse into a styled CLI dashboard string.
func FormatStatus(resp *app.StatusResponse, dailyTargetMinutes int) string {
	var b strings.Builder

	b.WriteString(SessionIndicator(resp.Active))
	if resp.Active && resp.ActiveSince != nil {
		b.WriteString(Dim(" since ") + Bold(worktime.ClockTime(*resp.ActiveSince)))
	}
	if resp.HomeOffice {
		b.WriteString(StylePurple.Render("  ⌂ home office"))
	}
	b.WriteString("\n")

	target := time.Duration(dailyTargetMinutes) * time.Minute
	b.WriteString(RenderDayProgress(resp.Today.Duration, dailyTargetMinutes, statusProgressBarWidth))
	b.WriteString(Dim(" of " + worktime.FormatDuration(target) + " today"))
	b.WriteString("\n\n")

	rows := [][]string{
		periodRow("Today", resp.Today),
		periodRow("This week", resp.Week),
		periodRow("This month", resp.Month),
		periodRow("This year", resp.Year),
	}
	sinceLabel := "Since Jan 1"
	if resp.ReferenceDate != nil {
		sinceLabel = "Since " + resp.ReferenceDate.Format("02.01.2006")
	}
	rows = append(rows, periodRow(sinceLabel, resp.SinceReference))
	b.WriteString(RenderTable([]string{"PERIOD", "WORKED", "HOURS"}, rows, 2))
	b.WriteString("\n")

	ot := resp.Overtime
	b.WriteString(fmt.Sprintf("%s  %s  %s\n",
		Bold("Overtime"),
		BalanceStyle(ot.BalanceMinutes).Bold(true).Render(ot.Text),
		Dim(fmt.Sprintf("(%d business days, required %s)",
			ot.BusinessDays, worktime.FormatDuration(time.Duration(ot.RequiredMinutes)*time.Minute))),
	))
	if resp.BaselineMinutes != 0 {
		b.WriteString(fmt.Sprintf("%s  %s\n", Bold("Baseline"), Dim(worktime.FormatBalance(resp.BaselineMinutes))))
	}

	leave := resp.Leave
	b.WriteString(fmt.Sprintf("%s     %s\n",
		Bold("Leave"),
		fmt.Sprintf("%d of %d days left %s", leave.Remaining, leave.Allowance, Dim(fmt.Sprintf("(%d)", leave.Year))),
	))

	if h := resp.NextHoliday; h != nil {
		b.WriteString(fmt.Sprintf("%s   %s %s\n",
			Bold("Holiday"),
			StyleBlue.Render(h.Name),
			Dim(fmt.Sprintf("%s, %s", h.Date.Format("02.01.2006"), RelativeDateFrom(h.Date, resp.GeneratedAt))),
		))
	}

	return RenderBox("Punch Clock", strings.TrimRight(b.String(), "\n"))
}

func periodRow(label string, p app.PeriodView) []string {
	hours := Dim("--")
	if p.Duration > 0 {
		hours = p.Hours.StringFixed(2)
	}
	return []string{label, DurationOrDash(p.Text), hours}
}

// FormatWidget renders the one-line summary for status bars.
func FormatWidget(resp *app.StatusResponse) string {
	line := resp.WidgetLine()
	if resp.Active {
		line += " ▶"
	}
	return line
}

// FormatPunchResult confirms a recorded punch.
func FormatPunchResult(resp *app.PunchResponse) string {
	clock := resp.Punch.Timestamp
	if at, ok := worktime.ParseTimestamp(resp.Punch.Timestamp, time.UTC); ok {
		clock = worktime.ClockTime(at)
	}
	suffix := ""
	if resp.Punch.HomeOffice {
		suffix = StylePurple.Render("  ⌂ home office")
	}
	if resp.Punch.Kind == domain.PunchStart {
		return StyleGreen.Render("▶ Clocked in at ") + Bold(clock) + suffix
	}
	line := StyleYellow.Render("■ Clocked out at ") + Bold(clock)
	if resp.Worked > 0 {
		line += Dim(", session " + worktime.FormatDuration(resp.Worked))
	}
	return line + suffix
}
