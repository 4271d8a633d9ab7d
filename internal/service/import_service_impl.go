package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/punchclock/internal/app"
	"github.com/alexanderramin/punchclock/internal/db"
	"github.com/alexanderramin/punchclock/internal/importer"
	"github.com/alexanderramin/punchclock/internal/repository"
)

type importService struct {
	stores   repository.Stores
	uow      db.UnitOfWork
	observer UseCaseObserver
}

// NewImportService writes imported data to stores. When uow is non-nil the
// whole import runs in one transaction against tx-scoped SQLite repositories
// and stores is not written to.
func NewImportService(stores repository.Stores, uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{
		stores:   stores,
		uow:      uow,
		observer: combineObservers(observers),
	}
}

func (s *importService) ImportLegacyDir(ctx context.Context, dir string, replace bool) (*app.ImportResult, error) {
	bundle, err := importer.LoadBundleDir(dir)
	if err != nil {
		return nil, fmt.Errorf("loading legacy files: %w", err)
	}
	return s.ImportBundle(ctx, bundle, replace)
}

// ImportBundle validates the whole bundle before writing anything. Punches
// with an unreadable timestamp are skipped and counted in the result. With
// replace set, existing punches and leave entries are removed first.
func (s *importService) ImportBundle(ctx context.Context, b *importer.Bundle, replace bool) (result *app.ImportResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{"replace": replace}
	defer observe(ctx, s.observer, "import.bundle", startedAt, fields, &err)

	if errs := importer.ValidateBundle(b); len(errs) > 0 {
		fields["validation_errors"] = len(errs)
		return nil, formatValidationErrors(errs)
	}

	converted, err := importer.Convert(b)
	if err != nil {
		return nil, fmt.Errorf("converting import bundle: %w", err)
	}

	if s.uow == nil {
		err = writeConverted(ctx, s.stores, converted, replace)
	} else {
		err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			return writeConverted(ctx, repository.NewSQLiteStores(tx), converted, replace)
		})
	}
	if err != nil {
		return nil, err
	}

	result = &app.ImportResult{
		PunchCount:     len(converted.Punches),
		LeaveCount:     len(converted.Leave),
		SettingsFound:  converted.Settings != nil,
		SkippedPunches: converted.SkippedPunches,
	}
	fields["punches"] = result.PunchCount
	fields["leave"] = result.LeaveCount
	fields["skipped_punches"] = result.SkippedPunches
	return result, nil
}

func writeConverted(ctx context.Context, stores repository.Stores, c *importer.Converted, replace bool) error {
	if replace {
		if err := stores.Punches.DeleteAll(ctx); err != nil {
			return fmt.Errorf("clearing punches: %w", err)
		}
		if err := stores.Leave.DeleteAll(ctx); err != nil {
			return fmt.Errorf("clearing leave: %w", err)
		}
	}
	for i, p := range c.Punches {
		if err := stores.Punches.Append(ctx, p); err != nil {
			return fmt.Errorf("appending punch %d: %w", i, err)
		}
	}
	if c.Settings != nil {
		if err := stores.Settings.Save(ctx, *c.Settings); err != nil {
			return fmt.Errorf("saving settings: %w", err)
		}
	}
	for i, l := range c.Leave {
		if err := stores.Leave.Create(ctx, l); err != nil {
			return fmt.Errorf("creating leave entry %d: %w", i, err)
		}
	}
	return nil
}
