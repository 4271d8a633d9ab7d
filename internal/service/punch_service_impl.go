package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/punchclock/internal/app"
	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/alexanderramin/punchclock/internal/repository"
	"github.com/alexanderramin/punchclock/internal/worktime"
)

type punchService struct {
	punches  repository.PunchRepo
	settings repository.SettingsRepo
	opts     Options
	observer UseCaseObserver
}

func NewPunchService(punches repository.PunchRepo, settings repository.SettingsRepo, opts Options, observers ...UseCaseObserver) PunchService {
	return &punchService{
		punches:  punches,
		settings: settings,
		opts:     opts,
		observer: combineObservers(observers),
	}
}

func (s *punchService) Punch(ctx context.Context, req app.PunchRequest) (resp *app.PunchResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{"force": req.Force}
	defer observe(ctx, s.observer, "punch.record", startedAt, fields, &err)

	events, err := s.punches.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing punches: %w", err)
	}
	open := worktime.CurrentSession(derefPunches(events), s.opts.location())

	kind := domain.PunchStart
	if open.Active {
		kind = domain.PunchEnd
	}
	if req.Kind != nil {
		kind = *req.Kind
	}
	fields["kind"] = string(kind)

	// Stored timestamps carry whole seconds, so compare at that precision.
	at := s.opts.now(req.At).Truncate(time.Second)
	endsOpenSession := kind == domain.PunchEnd && open.Active && at.After(open.Since)

	if !req.Force {
		if kind == domain.PunchStart && open.Active {
			return nil, fmt.Errorf("open session since %s: %w", worktime.ClockTime(open.Since), ErrAlreadyClockedIn)
		}
		if kind == domain.PunchEnd && !open.Active {
			return nil, ErrNotClockedIn
		}
		if kind == domain.PunchEnd && !endsOpenSession {
			return nil, &ValidationError{
				Field:   "at",
				Message: fmt.Sprintf("end %s must be after the open session's start %s", worktime.ClockTime(at), worktime.ClockTime(open.Since)),
			}
		}
	}

	homeOffice := false
	if req.HomeOffice != nil {
		homeOffice = *req.HomeOffice
	} else {
		settings, err := s.settings.Get(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading settings: %w", err)
		}
		homeOffice = settings.HomeOfficeActive
	}

	punch := domain.NewPunchEvent(kind, at, homeOffice)
	if err := s.punches.Append(ctx, punch); err != nil {
		return nil, fmt.Errorf("recording punch: %w", err)
	}

	// A forced end that does not follow the open start leaves the session open.
	resp = &app.PunchResponse{Punch: punch, Active: kind == domain.PunchStart || (open.Active && !endsOpenSession)}
	if endsOpenSession {
		resp.Worked = at.Sub(open.Since)
	}
	return resp, nil
}

func (s *punchService) List(ctx context.Context) ([]*domain.PunchEvent, error) {
	events, err := s.punches.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing punches: %w", err)
	}
	return events, nil
}

// Undo removes the most recently recorded punch.
func (s *punchService) Undo(ctx context.Context) (removed *domain.PunchEvent, err error) {
	startedAt := time.Now()
	defer observe(ctx, s.observer, "punch.undo", startedAt, nil, &err)

	last, err := s.punches.Last(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNothingToUndo
		}
		return nil, fmt.Errorf("loading last punch: %w", err)
	}
	if err := s.punches.Delete(ctx, last.ID); err != nil {
		return nil, fmt.Errorf("deleting punch: %w", err)
	}
	return last, nil
}

func (s *punchService) Delete(ctx context.Context, id string) (err error) {
	startedAt := time.Now()
	defer observe(ctx, s.observer, "punch.delete", startedAt, map[string]any{"id": id}, &err)

	if err := s.punches.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting punch %s: %w", id, err)
	}
	return nil
}

func (s *punchService) Clear(ctx context.Context) (err error) {
	startedAt := time.Now()
	defer observe(ctx, s.observer, "punch.clear", startedAt, nil, &err)

	if err := s.punches.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clearing punches: %w", err)
	}
	return nil
}

func derefPunches(events []*domain.PunchEvent) []domain.PunchEvent {
	out := make([]domain.PunchEvent, 0, len(events))
	for _, ev := range events {
		if ev != nil {
			out = append(out, *ev)
		}
	}
	return out
}
