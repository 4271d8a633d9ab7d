package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/punchclock/internal/cli/formatter"
)

func newHolidaysCmd(a *App) *cobra.Command {
	var (
		year     int
		upcoming int
	)

	cmd := &cobra.Command{
		Use:   "holidays",
		Short: "List the public holidays of a year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := a.now()
			if upcoming > 0 {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHolidays(a.Holidays.Upcoming(now, upcoming), now))
				return nil
			}
			if year == 0 {
				year = now.Year()
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHolidays(a.Holidays.List(year), now))
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Year to list (default current year)")
	cmd.Flags().IntVar(&upcoming, "upcoming", 0, "Show only the next N holidays")

	return cmd
}
