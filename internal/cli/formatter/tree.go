package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TreeItem is one line of the session log: a day header (Level 0) or a
// session under it (Level 1). Detail is right-aligned as a duration badge.
type TreeItem struct {
	Title  string
	Level  int
	IsLast bool
	Active bool
	Detail string
}

// RenderTree renders day headers with their sessions hanging below them. The
// running session is marked with ▶.
func RenderTree(items []TreeItem) string {
	if len(items) == 0 {
		return ""
	}

	left := make([]string, len(items))
	width := 0
	for i, item := range items {
		left[i] = treeLine(item)
		width = max(width, lipgloss.Width(left[i]))
	}

	var b strings.Builder
	for i, item := range items {
		b.WriteString(left[i])
		if item.Detail != "" {
			b.WriteString(strings.Repeat(" ", width-lipgloss.Width(left[i])+2))
			b.WriteString(StyleBlue.Render("[ " + item.Detail + " ]"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func treeLine(item TreeItem) string {
	var connector string
	if item.Level > 0 {
		connector = strings.Repeat("│  ", item.Level-1) + "├─ "
		if item.IsLast {
			connector = strings.Repeat("│  ", item.Level-1) + "└─ "
		}
	}
	title := item.Title
	if item.Active {
		title = StyleYellowBold.Render("▶ " + title)
	}
	return StyleDim.Render(connector) + title
}
