package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexanderramin/punchclock/internal/api"
	"github.com/alexanderramin/punchclock/internal/app"
	"github.com/alexanderramin/punchclock/internal/cli/formatter"
)

func newStatusCmd(a *App) *cobra.Command {
	var (
		output string
		widget bool
	)

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show worked time, overtime balance and leave",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(output)
			if err != nil {
				return err
			}
			return runStatus(cmd, a, format, widget)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", string(outputText), "Output format: text, json or yaml")
	cmd.Flags().BoolVarP(&widget, "widget", "w", false, "Print only the one-line summary")

	return cmd
}

func runStatus(cmd *cobra.Command, a *App, format outputFormat, widget bool) error {
	now := a.now()
	resp, err := a.Status.GetStatus(cmd.Context(), app.StatusRequest{Now: &now})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if widget {
		fmt.Fprintln(out, formatter.FormatWidget(resp))
		return nil
	}

	switch format {
	case outputJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(api.ToStatusDTO(resp))
	case outputYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(api.ToStatusDTO(resp)); err != nil {
			return err
		}
		return enc.Close()
	default:
		fmt.Fprintln(out, formatter.FormatStatus(resp, a.Config.DailyTargetMinutes))
		return nil
	}
}
