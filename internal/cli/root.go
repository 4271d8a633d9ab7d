package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/punchclock/internal/config"
	"github.com/alexanderramin/punchclock/internal/db"
	"github.com/alexanderramin/punchclock/internal/repository"
	"github.com/alexanderramin/punchclock/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Punches  service.PunchService
	Status   service.StatusService
	Settings service.SettingsService
	Leave    service.LeaveService
	Holidays service.HolidayService
	Import   service.ImportService
	Backup   service.BackupService

	Config config.Config

	// Now overrides the clock in tests.
	Now func() time.Time
	// IsInteractive reports whether stdin is a terminal. Forms and the
	// dashboard need one.
	IsInteractive func() bool
}

// NewApp wires every service against one storage backend. uow is nil for
// the JSON backend.
func NewApp(cfg config.Config, stores repository.Stores, uow db.UnitOfWork, observers ...service.UseCaseObserver) *App {
	opts := service.OptionsFromConfig(cfg)
	imports := service.NewImportService(stores, uow, observers...)
	return &App{
		Punches:  service.NewPunchService(stores.Punches, stores.Settings, opts, observers...),
		Status:   service.NewStatusService(stores, opts, observers...),
		Settings: service.NewSettingsService(stores.Settings, observers...),
		Leave:    service.NewLeaveService(stores.Leave, opts, observers...),
		Holidays: service.NewHolidayService(opts),
		Import:   imports,
		Backup:   service.NewBackupService(stores, imports, observers...),
		Config:   cfg,
	}
}

func (a *App) now() time.Time {
	now := time.Now()
	if a.Now != nil {
		now = a.Now()
	}
	return now.In(a.location())
}

func (a *App) location() *time.Location {
	if a.Config.Location == nil {
		return time.Local
	}
	return a.Config.Location
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "punchclock" command and registers all
// subcommands against the provided App. Without a subcommand it prints the
// status.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "punchclock",
		Short:         "Personal time clock with overtime and leave tracking",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd, app, outputText, false)
		},
	}

	root.AddCommand(
		newPunchCmd(app),
		newUndoCmd(app),
		newLogCmd(app),
		newStatusCmd(app),
		newSettingsCmd(app),
		newLeaveCmd(app),
		newHolidaysCmd(app),
		newImportCmd(app),
		newBackupCmd(app),
		newRestoreCmd(app),
		newServeCmd(app),
		newWatchCmd(app),
	)

	return root
}
