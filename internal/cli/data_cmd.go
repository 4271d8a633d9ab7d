package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/punchclock/internal/app"
	"github.com/alexanderramin/punchclock/internal/cli/formatter"
)

func newImportCmd(a *App) *cobra.Command {
	var replace bool

	cmd := &cobra.Command{
		Use:   "import [DIR]",
		Short: "Import stempel.json, settings.json and urlaub.json from a directory",
		Long: `Import reads the legacy JSON files from DIR (default: the configured data
directory). Every file is validated first; nothing is written when any record
is malformed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := a.Config.DataDir
			if len(args) == 1 {
				dir = args[0]
			}
			if dir == "" {
				return fmt.Errorf("no directory given and no data directory configured")
			}

			stop := a.spinner(cmd, "Importing "+dir)
			res, err := a.Import.ImportLegacyDir(cmd.Context(), dir, replace)
			stop()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatImportResult(res))
			return nil
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "Delete existing punches and leave before importing")

	return cmd
}

func newBackupCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "backup FILE.zip",
		Short: "Write punches, settings and leave to a zip archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("creating backup: %w", err)
			}
			defer func() {
				if cerr := f.Close(); cerr != nil && err == nil {
					err = fmt.Errorf("closing backup: %w", cerr)
				}
			}()

			if err := a.Backup.Export(cmd.Context(), f); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Backup written to %s\n", formatter.StyleGreen.Render("✔"), args[0])
			return nil
		},
	}
}

func newRestoreCmd(a *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "restore FILE.zip",
		Short: "Replace all data with the contents of a backup archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				if !a.interactive() {
					return fmt.Errorf("restore replaces all data; pass --yes to confirm")
				}
				if err := confirmForm("Replace all punches, settings and leave?", &yes).Run(); err != nil {
					return err
				}
				if !yes {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelled."))
					return nil
				}
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening backup: %w", err)
			}
			defer f.Close()
			info, err := f.Stat()
			if err != nil {
				return fmt.Errorf("reading backup: %w", err)
			}

			stop := a.spinner(cmd, "Restoring "+args[0])
			res, err := a.Backup.Restore(cmd.Context(), f, info.Size())
			stop()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatImportResult(res))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation")

	return cmd
}

// spinner shows progress on stderr for interactive sessions only.
func (a *App) spinner(cmd *cobra.Command, msg string) func() {
	if !a.interactive() {
		return func() {}
	}
	return formatter.StartSpinner(cmd.ErrOrStderr(), msg)
}

func formatImportResult(res *app.ImportResult) string {
	settings := "no settings"
	if res.SettingsFound {
		settings = "settings"
	}
	line := fmt.Sprintf("%s Imported %d punches, %d leave entries and %s",
		formatter.StyleGreen.Render("✔"), res.PunchCount, res.LeaveCount, settings)
	if res.SkippedPunches > 0 {
		line += fmt.Sprintf(" (skipped %d punches with unreadable timestamps)", res.SkippedPunches)
	}
	return line
}
