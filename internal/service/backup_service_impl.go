package service

import (
	"archive/zip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/punchclock/internal/app"
	"github.com/alexanderramin/punchclock/internal/importer"
	"github.com/alexanderramin/punchclock/internal/repository"
)

// maxBackupEntrySize bounds a single decompressed file in a backup archive.
const maxBackupEntrySize = 64 << 20

type backupService struct {
	stores   repository.Stores
	importer ImportService
	observer UseCaseObserver
}

// NewBackupService exports from stores and restores through imports, so a
// restore gets the same validation and transaction handling as an import.
func NewBackupService(stores repository.Stores, imports ImportService, observers ...UseCaseObserver) BackupService {
	return &backupService{
		stores:   stores,
		importer: imports,
		observer: combineObservers(observers),
	}
}

// Export writes a zip archive holding the three legacy JSON files.
func (s *backupService) Export(ctx context.Context, w io.Writer) (err error) {
	startedAt := time.Now()
	defer observe(ctx, s.observer, "backup.export", startedAt, nil, &err)

	punches, err := s.stores.Punches.List(ctx)
	if err != nil {
		return fmt.Errorf("listing punches: %w", err)
	}
	settings, err := s.stores.Settings.Get(ctx)
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	leave, err := s.stores.Leave.List(ctx)
	if err != nil {
		return fmt.Errorf("listing leave: %w", err)
	}
	bundle := importer.FromDomain(punches, settings, leave)

	zw := zip.NewWriter(w)
	files := []struct {
		name string
		v    any
	}{
		{importer.PunchFileName, bundle.Punches},
		{importer.SettingsFileName, bundle.Settings},
		{importer.LeaveFileName, bundle.Leave},
	}
	for _, f := range files {
		data, err := json.MarshalIndent(f.v, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding %s: %w", f.name, err)
		}
		fw, err := zw.CreateHeader(&zip.FileHeader{Name: f.name, Method: zip.Deflate, Modified: startedAt})
		if err != nil {
			return fmt.Errorf("adding %s: %w", f.name, err)
		}
		if _, err := fw.Write(data); err != nil {
			return fmt.Errorf("writing %s: %w", f.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finishing archive: %w", err)
	}
	return nil
}

// Restore replaces all punches and leave entries with the archive's content.
// Files other than the three legacy ones are ignored.
func (s *backupService) Restore(ctx context.Context, r io.ReaderAt, size int64) (result *app.ImportResult, err error) {
	startedAt := time.Now()
	defer observe(ctx, s.observer, "backup.restore", startedAt, nil, &err)

	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("opening archive: %w", err)
	}
	var bundle importer.Bundle
	for _, f := range zr.File {
		switch f.Name {
		case importer.PunchFileName, importer.SettingsFileName, importer.LeaveFileName:
		default:
			continue
		}
		data, err := readZipEntry(f)
		if err != nil {
			return nil, err
		}
		if err := bundle.DecodeFile(f.Name, data); err != nil {
			return nil, err
		}
	}
	return s.importer.ImportBundle(ctx, &bundle, true)
}

func readZipEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", f.Name, err)
	}
	defer rc.Close()
	data, err := io.ReadAll(io.LimitReader(rc, maxBackupEntrySize+1))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", f.Name, err)
	}
	if len(data) > maxBackupEntrySize {
		return nil, fmt.Errorf("%s exceeds %d bytes", f.Name, maxBackupEntrySize)
	}
	return data, nil
}
