package app

import (
	"context"
	"time"

	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/alexanderramin/punchclock/internal/holiday"
)

type StatusUseCase interface {
	GetStatus(ctx context.Context, req StatusRequest) (*StatusResponse, error)
}

type PunchUseCase interface {
	Punch(ctx context.Context, req PunchRequest) (*PunchResponse, error)
	List(ctx context.Context) ([]*domain.PunchEvent, error)
}

type SettingsUseCase interface {
	Get(ctx context.Context) (domain.Settings, error)
	Update(ctx context.Context, patch SettingsPatch) (domain.Settings, error)
}

type LeaveUseCase interface {
	Add(ctx context.Context, req AddLeaveRequest) (*domain.LeaveEntry, error)
	List(ctx context.Context) ([]*domain.LeaveEntry, error)
	Balance(ctx context.Context, year int) (domain.LeaveBalance, error)
}

type HolidayUseCase interface {
	List(year int) []holiday.Holiday
	Upcoming(from time.Time, n int) []holiday.Holiday
}
