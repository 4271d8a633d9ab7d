package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/punchclock/internal/app"
	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/alexanderramin/punchclock/internal/repository"
)

type settingsService struct {
	settings repository.SettingsRepo
	observer UseCaseObserver
}

func NewSettingsService(settings repository.SettingsRepo, observers ...UseCaseObserver) SettingsService {
	return &settingsService{settings: settings, observer: combineObservers(observers)}
}

func (s *settingsService) Get(ctx context.Context) (domain.Settings, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("loading settings: %w", err)
	}
	return settings, nil
}

func (s *settingsService) Update(ctx context.Context, patch app.SettingsPatch) (updated domain.Settings, err error) {
	startedAt := time.Now()
	defer observe(ctx, s.observer, "settings.update", startedAt, nil, &err)

	if patch.ClearReferenceDate && patch.ReferenceDate != nil {
		return domain.Settings{}, &ValidationError{Field: "reference_date", Message: "cannot set and clear at the same time"}
	}

	current, err := s.settings.Get(ctx)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("loading settings: %w", err)
	}
	if patch.IsEmpty() {
		return current, nil
	}

	if patch.BaselineMinutes != nil {
		current.BaselineMinutes = *patch.BaselineMinutes
	}
	if patch.ReferenceDate != nil {
		d := time.Date(patch.ReferenceDate.Year(), patch.ReferenceDate.Month(), patch.ReferenceDate.Day(), 0, 0, 0, 0, time.UTC)
		current.ReferenceDate = &d
	}
	if patch.ClearReferenceDate {
		current.ReferenceDate = nil
	}
	if patch.HomeOfficeActive != nil {
		current.HomeOfficeActive = *patch.HomeOfficeActive
	}
	current.UpdatedAt = time.Now().UTC()

	if err := s.settings.Save(ctx, current); err != nil {
		return domain.Settings{}, fmt.Errorf("saving settings: %w", err)
	}
	return current, nil
}
