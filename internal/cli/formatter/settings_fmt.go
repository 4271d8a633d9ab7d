package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/alexanderramin/punchclock/internal/worktime"
)

func FormatSettings(s domain.Settings) string {
	var b strings.Builder
	ref := s.ReferenceDateString()
	if ref == "" {
		ref = Dim("not set (Jan 1)")
	}
	homeOffice := Dim("off")
	if s.HomeOfficeActive {
		homeOffice = StylePurple.Render("on")
	}
	fmt.Fprintf(&b, "%s  %s\n", Bold("Baseline      "), worktime.FormatBalance(s.BaselineMinutes))
	fmt.Fprintf(&b, "%s  %s\n", Bold("Reference date"), ref)
	fmt.Fprintf(&b, "%s  %s\n", Bold("Home office   "), homeOffice)
	return b.String()
}
