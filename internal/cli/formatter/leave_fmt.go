package formatter

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/punchclock/internal/domain"
)

func FormatLeaveList(entries []*domain.LeaveEntry) string {
	if len(entries) == 0 {
		return Dim("No leave booked.") + "\n"
	}
	rows := make([][]string, 0, len(entries))
	for _, l := range entries {
		rows = append(rows, []string{
			l.From.Format("Mon 02.01.2006"),
			l.To.Format("Mon 02.01.2006"),
			strconv.Itoa(l.BusinessDays),
		})
	}
	return RenderTable([]string{"FROM", "TO", "DAYS"}, rows, 2)
}

func FormatLeaveBalance(b domain.LeaveBalance) string {
	style := StyleGreen
	if b.Remaining < 0 {
		style = StyleRed
	} else if b.Allowance > 0 && b.Remaining*5 < b.Allowance {
		style = StyleYellow
	}
	return fmt.Sprintf("%s %s taken, %s of %d days left\n",
		Bold(strconv.Itoa(b.Year)+":"),
		strconv.Itoa(b.Taken),
		style.Render(strconv.Itoa(b.Remaining)),
		b.Allowance,
	)
}
