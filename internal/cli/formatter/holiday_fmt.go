package formatter

import (
	"time"

	"github.com/alexanderramin/punchclock/internal/holiday"
)

// FormatHolidays renders holidays with their distance from now. Past
// holidays are dimmed.
func FormatHolidays(hs []holiday.Holiday, now time.Time) string {
	if len(hs) == 0 {
		return Dim("No holidays.") + "\n"
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	rows := make([][]string, 0, len(hs))
	for _, h := range hs {
		row := []string{h.Date.Format("02.01.2006"), h.Date.Format("Mon"), h.Name, RelativeDateFrom(h.Date, now)}
		if h.Date.Before(today) {
			for i := range row {
				row[i] = Dim(row[i])
			}
		}
		rows = append(rows, row)
	}
	return RenderTable([]string{"DATE", "DAY", "HOLIDAY", "WHEN"}, rows)
}
