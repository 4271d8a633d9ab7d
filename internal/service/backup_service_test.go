package service

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/alexanderramin/punchclock/internal/app"
	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/alexanderramin/punchclock/internal/importer"
	"github.com/alexanderramin/punchclock/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackup_ExportThenRestore(t *testing.T) {
	source, _, sourceUoW := setupStores(t)
	ctx := context.Background()
	_, err := NewImportService(source, sourceUoW).ImportBundle(ctx, legacyBundle(), false)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewBackupService(source, nil).Export(ctx, &buf))

	target := setupJSONStores(t)
	restore := NewBackupService(target, NewImportService(target, nil))
	result, err := restore.Restore(ctx, bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	assert.Equal(t, 4, result.PunchCount)
	assert.Equal(t, 1, result.LeaveCount)

	punches, err := target.Punches.List(ctx)
	require.NoError(t, err)
	require.Len(t, punches, 4)
	assert.Equal(t, "2026-03-03 12:00:00", punches[3].Timestamp)

	settings, err := target.Settings.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 120, settings.BaselineMinutes)
	assert.True(t, settings.HomeOfficeActive)
}

func TestBackup_RestoresArchiveWithUnreadablePunch(t *testing.T) {
	source := setupJSONStores(t)
	ctx := context.Background()
	require.NoError(t, source.Punches.Append(ctx, &domain.PunchEvent{Kind: domain.PunchStart, Timestamp: "2026-03-02 08:00:00"}))
	require.NoError(t, source.Punches.Append(ctx, &domain.PunchEvent{Kind: domain.PunchEnd, Timestamp: "2026-03-02 16:30:00"}))
	require.NoError(t, source.Punches.Append(ctx, &domain.PunchEvent{Kind: domain.PunchStart, Timestamp: "garbage"}))

	var buf bytes.Buffer
	require.NoError(t, NewBackupService(source, nil).Export(ctx, &buf))

	target, _, uow := setupStores(t)
	restore := NewBackupService(target, NewImportService(target, uow))
	result, err := restore.Restore(ctx, bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	assert.Equal(t, 2, result.PunchCount)
	assert.Equal(t, 1, result.SkippedPunches)

	status, err := NewStatusService(target, testOptions()).GetStatus(ctx, app.StatusRequest{Now: timePtr(testutil.At(2026, 3, 2, 18, 0))})
	require.NoError(t, err)
	assert.False(t, status.Active)
	assert.Equal(t, "8h 30min", status.Today.Text)
}

func TestBackup_ExportUsesLegacySpelling(t *testing.T) {
	stores, _, uow := setupStores(t)
	ctx := context.Background()
	_, err := NewImportService(stores, uow).ImportBundle(ctx, legacyBundle(), false)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewBackupService(stores, nil).Export(ctx, &buf))

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	names := make([]string, 0, len(zr.File))
	var punches []importer.PunchRecord
	for _, f := range zr.File {
		names = append(names, f.Name)
		if f.Name != importer.PunchFileName {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		rc.Close()
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(data, &punches))
	}
	assert.ElementsMatch(t, []string{importer.PunchFileName, importer.SettingsFileName, importer.LeaveFileName}, names)
	require.Len(t, punches, 4)
	assert.Equal(t, "Ende", punches[1].Typ)
}

func TestBackup_RestoreRejectsGarbage(t *testing.T) {
	stores, _, uow := setupStores(t)
	svc := NewBackupService(stores, NewImportService(stores, uow))

	data := []byte("definitely not a zip archive")
	_, err := svc.Restore(context.Background(), bytes.NewReader(data), int64(len(data)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening archive")
}
