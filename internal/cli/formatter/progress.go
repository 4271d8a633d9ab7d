package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderDayProgress draws today's worked time against the daily target, e.g.
// [█████░░░░░]  50%. The bar never overflows; the percentage does, so a long
// day reads 112%.
func RenderDayProgress(worked time.Duration, targetMinutes, width int) string {
	if width < 2 {
		width = 2
	}
	ratio := 0.0
	if targetMinutes > 0 && worked > 0 {
		ratio = worked.Minutes() / float64(targetMinutes)
	}

	filled := min(int(ratio*float64(width)), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	return fmt.Sprintf("[%s] %3.0f%%", dayProgressStyle(ratio).Render(bar), ratio*100)
}

// dayProgressStyle: dim before any work, yellow while under target, green at
// target, purple once past it.
func dayProgressStyle(ratio float64) lipgloss.Style {
	switch {
	case ratio <= 0:
		return StyleDim
	case ratio < 1:
		return StyleYellow
	case ratio < 1.01:
		return StyleGreen
	default:
		return StylePurple
	}
}
