package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/punchclock/internal/app"
	"github.com/alexanderramin/punchclock/internal/cli/formatter"
	"github.com/alexanderramin/punchclock/internal/domain"
)

func newPunchCmd(a *App) *cobra.Command {
	var (
		homeOffice bool
		office     bool
		force      bool
	)
	at := &instantFlag{loc: a.location, now: a.now}

	cmd := &cobra.Command{
		Use:   "punch [start|end]",
		Short: "Clock in or out; without an argument the state toggles",
		Args:  cobra.MaximumNArgs(1),
		ValidArgs: []string{
			"start", "end",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			req := app.PunchRequest{Force: force}
			if len(args) == 1 {
				kind, err := domain.ParsePunchKind(args[0])
				if err != nil {
					return err
				}
				req.Kind = &kind
			}
			if when := at.Value(); when != nil {
				req.At = when
			} else {
				now := a.now()
				req.At = &now
			}
			if homeOffice && office {
				return fmt.Errorf("--home-office and --office are mutually exclusive")
			}
			if cmd.Flags().Changed("home-office") {
				req.HomeOffice = &homeOffice
			}
			if cmd.Flags().Changed("office") {
				v := !office
				req.HomeOffice = &v
			}

			resp, err := a.Punches.Punch(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPunchResult(resp))
			return nil
		},
	}

	cmd.Flags().Var(at, "at", "Punch time (HH:MM today, or YYYY-MM-DD HH:MM)")
	cmd.Flags().BoolVar(&homeOffice, "home-office", false, "Mark the punch as home office")
	cmd.Flags().BoolVar(&office, "office", false, "Mark the punch as office work")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Record even when the session state does not match")

	return cmd
}

func newUndoCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "undo",
		Short: "Remove the most recent punch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, err := a.Punches.Undo(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s punch at %s\n", removed.Kind, removed.Timestamp)
			return nil
		},
	}
}

func newLogCmd(a *App) *cobra.Command {
	var (
		days int
		raw  bool
	)

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show recent sessions grouped by day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			events, err := a.Punches.List(cmd.Context())
			if err != nil {
				return err
			}
			if raw {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPunchTable(events))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPunchLog(events, a.now(), a.location(), days))
			return nil
		},
	}

	cmd.Flags().IntVarP(&days, "days", "n", 7, "Number of days with work to show (0 for all)")
	cmd.Flags().BoolVar(&raw, "raw", false, "List the raw punches instead of sessions")

	return cmd
}
