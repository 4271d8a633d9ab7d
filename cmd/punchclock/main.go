package main

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/punchclock/internal/cli"
	"github.com/alexanderramin/punchclock/internal/config"
	"github.com/alexanderramin/punchclock/internal/db"
	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/alexanderramin/punchclock/internal/repository"
	"github.com/alexanderramin/punchclock/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Getenv)
	if err != nil {
		return err
	}

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	var (
		stores repository.Stores
		uow    db.UnitOfWork
	)
	switch cfg.Storage {
	case domain.StorageJSON:
		store, err := repository.NewJSONStore(cfg.DataDir)
		if err != nil {
			return fmt.Errorf("opening data directory: %w", err)
		}
		stores = store.Stores()
	default:
		var database *sql.DB
		database, err = db.OpenDB(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()
		stores = repository.NewSQLiteStores(database)
		uow = db.NewSQLiteUnitOfWork(database)
	}

	app := cli.NewApp(cfg, stores, uow, observers...)

	// Forms and the dashboard need a terminal on stdin.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
