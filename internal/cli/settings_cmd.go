package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/punchclock/internal/app"
	"github.com/alexanderramin/punchclock/internal/cli/formatter"
)

func newSettingsCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change baseline, reference date and home office default",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showSettings(cmd, a)
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show the current settings",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return showSettings(cmd, a)
			},
		},
		newSettingsSetCmd(a),
		newSettingsEditCmd(a),
	)

	return cmd
}

func showSettings(cmd *cobra.Command, a *App) error {
	s, err := a.Settings.Get(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSettings(s))
	return nil
}

func newSettingsSetCmd(a *App) *cobra.Command {
	var (
		baseline   string
		reference  string
		homeOffice string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change individual settings",
		Example: `  punchclock settings set --baseline +3:15 --reference-date 2026-01-05
  punchclock settings set --home-office on
  punchclock settings set --reference-date ""`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch app.SettingsPatch
			if cmd.Flags().Changed("baseline") {
				m, err := parseBalance(baseline)
				if err != nil {
					return err
				}
				patch.BaselineMinutes = &m
			}
			if cmd.Flags().Changed("reference-date") {
				if strings.TrimSpace(reference) == "" {
					patch.ClearReferenceDate = true
				} else {
					d, err := parseDate(reference)
					if err != nil {
						return err
					}
					patch.ReferenceDate = &d
				}
			}
			if cmd.Flags().Changed("home-office") {
				on, err := parseOnOff(homeOffice)
				if err != nil {
					return err
				}
				patch.HomeOfficeActive = &on
			}
			if patch.IsEmpty() {
				return fmt.Errorf("nothing to change; pass --baseline, --reference-date or --home-office")
			}

			s, err := a.Settings.Update(cmd.Context(), patch)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSettings(s))
			return nil
		},
	}

	cmd.Flags().StringVar(&baseline, "baseline", "", "Carried-in overtime (+H:MM, -H:MM or minutes)")
	cmd.Flags().StringVar(&reference, "reference-date", "", "Day overtime counting starts (YYYY-MM-DD, empty to clear)")
	cmd.Flags().StringVar(&homeOffice, "home-office", "", "Default home office flag for new punches (on/off)")

	return cmd
}

func newSettingsEditCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit the settings in an interactive form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.interactive() {
				return fmt.Errorf("settings edit needs a terminal; use settings set instead")
			}
			current, err := a.Settings.Get(cmd.Context())
			if err != nil {
				return err
			}
			values := newSettingsFormValues(current)
			if err := settingsForm(values).Run(); err != nil {
				return err
			}
			patch, err := values.patch()
			if err != nil {
				return err
			}
			s, err := a.Settings.Update(cmd.Context(), patch)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSettings(s))
			return nil
		},
	}
}

// patch converts the form values into a full settings update.
func (v *settingsFormValues) patch() (app.SettingsPatch, error) {
	var p app.SettingsPatch
	baseline := 0
	if strings.TrimSpace(v.Baseline) != "" {
		m, err := parseBalance(v.Baseline)
		if err != nil {
			return p, err
		}
		baseline = m
	}
	p.BaselineMinutes = &baseline
	if strings.TrimSpace(v.ReferenceDate) == "" {
		p.ClearReferenceDate = true
	} else {
		d, err := parseDate(v.ReferenceDate)
		if err != nil {
			return p, err
		}
		p.ReferenceDate = &d
	}
	homeOffice := v.HomeOffice
	p.HomeOfficeActive = &homeOffice
	return p, nil
}
