package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/punchclock/internal/app"
	"github.com/alexanderramin/punchclock/internal/cli/formatter"
)

func newLeaveCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leave",
		Short: "Record and review leave days",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listLeave(cmd, a)
		},
	}

	cmd.AddCommand(
		newLeaveAddCmd(a),
		&cobra.Command{
			Use:   "list",
			Short: "List all leave entries",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return listLeave(cmd, a)
			},
		},
		newLeaveClearCmd(a),
		newLeaveBalanceCmd(a),
	)

	return cmd
}

func listLeave(cmd *cobra.Command, a *App) error {
	entries, err := a.Leave.List(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatLeaveList(entries))
	return nil
}

func newLeaveAddCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add FROM [TO]",
		Short: "Record leave from FROM through TO (inclusive)",
		Example: `  punchclock leave add 2026-08-03 2026-08-14
  punchclock leave add 2026-12-24`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var v leaveFormValues
			switch {
			case len(args) > 0:
				v.From = args[0]
				if len(args) == 2 {
					v.To = args[1]
				}
			case a.interactive():
				if err := leaveForm(&v).Run(); err != nil {
					return err
				}
			default:
				return fmt.Errorf("leave add needs FROM [TO]")
			}

			req, err := v.request()
			if err != nil {
				return err
			}
			entry, err := a.Leave.Add(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Leave %s, %d business days\n",
				formatter.StyleGreen.Render("✔"), entry.RangeString(), entry.BusinessDays)
			return nil
		},
	}
}

func (v leaveFormValues) request() (app.AddLeaveRequest, error) {
	from, err := parseDate(v.From)
	if err != nil {
		return app.AddLeaveRequest{}, err
	}
	to := from
	if strings.TrimSpace(v.To) != "" {
		to, err = parseDate(v.To)
		if err != nil {
			return app.AddLeaveRequest{}, err
		}
	}
	return app.AddLeaveRequest{From: from, To: to}, nil
}

func newLeaveClearCmd(a *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every leave entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				if !a.interactive() {
					return fmt.Errorf("refusing to clear leave without --yes")
				}
				if err := confirmForm("Delete all leave entries?", &yes).Run(); err != nil {
					return err
				}
				if !yes {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelled."))
					return nil
				}
			}
			if err := a.Leave.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All leave entries deleted.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation")

	return cmd
}

func newLeaveBalanceCmd(a *App) *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show taken and remaining leave days for a year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if year == 0 {
				year = a.now().Year()
			}
			b, err := a.Leave.Balance(cmd.Context(), year)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatLeaveBalance(b))
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Year to report (default current year)")

	return cmd
}
