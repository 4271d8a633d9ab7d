package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var boxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorDim).
	Padding(1, 2)

// RenderBox frames content, with an upper-cased title line when title is set.
func RenderBox(title, content string) string {
	if title == "" {
		return boxStyle.Render(content)
	}
	return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
}

// RelativeDateFrom describes how many calendar days t lies from now:
// "Today", "Tomorrow", "In 5d", "In 3w", "In 4mo", and the same in the past.
func RelativeDateFrom(t, now time.Time) string {
	days := calendarDaysBetween(now, t)
	switch days {
	case 0:
		return "Today"
	case 1:
		return "Tomorrow"
	case -1:
		return "Yesterday"
	}

	n := days
	if n < 0 {
		n = -n
	}
	var span string
	switch {
	case n < 14:
		span = fmt.Sprintf("%dd", n)
	case n < 60:
		span = fmt.Sprintf("%dw", n/7)
	default:
		span = fmt.Sprintf("%dmo", n/30)
	}
	if days > 0 {
		return "In " + span
	}
	return span + " ago"
}

// calendarDaysBetween counts midnights from a to b using each value's own
// wall-clock date, so DST and differing zones do not shift the result.
func calendarDaysBetween(a, b time.Time) int {
	ya, ma, da := a.Date()
	yb, mb, db := b.Date()
	from := time.Date(ya, ma, da, 0, 0, 0, 0, time.UTC)
	to := time.Date(yb, mb, db, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

// HumanDayFrom labels a day relative to now: "Today", "Yesterday", or a
// weekday plus date such as "Mon 02.03.2026".
func HumanDayFrom(t, now time.Time) string {
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	y3, m3, d3 := now.AddDate(0, 0, -1).Date()
	if y2 == y3 && m2 == m3 && d2 == d3 {
		return "Yesterday"
	}
	return t.Format("Mon 02.01.2006")
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// DurationOrDash renders a formatted duration, or a dimmed "--" when the
// period is empty.
func DurationOrDash(text string) string {
	if text == "" {
		return Dim("--")
	}
	return StyleFg.Render(text)
}
