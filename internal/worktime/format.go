package worktime

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// FormatDuration renders d as "{H}h {M}min". Zero renders as "".
func FormatDuration(d time.Duration) string {
	if d == 0 {
		return ""
	}
	minutes := int64(d / time.Minute)
	return fmt.Sprintf("%dh %dmin", minutes/60, minutes%60)
}

// FormatBalance renders a signed minute count as "+H:MM" or "-H:MM".
func FormatBalance(minutes int) string {
	sign := "+"
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	return fmt.Sprintf("%s%d:%02d", sign, minutes/60, minutes%60)
}

// DecimalHours converts d to hours rounded to two places.
func DecimalHours(d time.Duration) decimal.Decimal {
	return decimal.NewFromInt(int64(d / time.Minute)).
		Div(decimal.NewFromInt(60)).
		Round(2)
}

// ClockTime renders the local time of day as "HH:MM".
func ClockTime(t time.Time) string {
	return t.Format("15:04")
}
