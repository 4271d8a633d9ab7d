package service

import (
	"context"
	"io"
	"time"

	"github.com/alexanderramin/punchclock/internal/app"
	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/alexanderramin/punchclock/internal/holiday"
	"github.com/alexanderramin/punchclock/internal/importer"
)

type PunchService interface {
	Punch(ctx context.Context, req app.PunchRequest) (*app.PunchResponse, error)
	List(ctx context.Context) ([]*domain.PunchEvent, error)
	Undo(ctx context.Context) (*domain.PunchEvent, error)
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}

type StatusService interface {
	GetStatus(ctx context.Context, req app.StatusRequest) (*app.StatusResponse, error)
}

type SettingsService interface {
	Get(ctx context.Context) (domain.Settings, error)
	Update(ctx context.Context, patch app.SettingsPatch) (domain.Settings, error)
}

type LeaveService interface {
	Add(ctx context.Context, req app.AddLeaveRequest) (*domain.LeaveEntry, error)
	List(ctx context.Context) ([]*domain.LeaveEntry, error)
	Clear(ctx context.Context) error
	Balance(ctx context.Context, year int) (domain.LeaveBalance, error)
}

type HolidayService interface {
	List(year int) []holiday.Holiday
	Upcoming(from time.Time, n int) []holiday.Holiday
}

type ImportService interface {
	ImportLegacyDir(ctx context.Context, dir string, replace bool) (*app.ImportResult, error)
	ImportBundle(ctx context.Context, b *importer.Bundle, replace bool) (*app.ImportResult, error)
}

type BackupService interface {
	Export(ctx context.Context, w io.Writer) error
	Restore(ctx context.Context, r io.ReaderAt, size int64) (*app.ImportResult, error)
}

var (
	_ app.StatusUseCase   = StatusService(nil)
	_ app.PunchUseCase    = PunchService(nil)
	_ app.SettingsUseCase = SettingsService(nil)
	_ app.LeaveUseCase    = LeaveService(nil)
	_ app.HolidayUseCase  = HolidayService(nil)
)
