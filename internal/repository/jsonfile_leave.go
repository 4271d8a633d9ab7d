package repository

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/alexanderramin/punchclock/internal/importer"
)

// JSONLeaveRepo implements LeaveRepo on urlaub.json.
type JSONLeaveRepo struct {
	store *JSONStore
}

func (r *JSONLeaveRepo) load() ([]importer.LeaveRecord, error) {
	var records []importer.LeaveRecord
	if _, err := r.store.read(importer.LeaveFileName, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *JSONLeaveRepo) Create(_ context.Context, l *domain.LeaveEntry) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return err
	}
	records = append(records, importer.LeaveToRecord(l))
	if err := r.store.write(importer.LeaveFileName, records); err != nil {
		return err
	}
	l.ID = strconv.Itoa(len(records))
	return nil
}

func (r *JSONLeaveRepo) List(_ context.Context) ([]*domain.LeaveEntry, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return nil, err
	}
	entries := make([]*domain.LeaveEntry, 0, len(records))
	for i, rec := range records {
		from, err := time.Parse(domain.DateLayout, rec.Von)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: parsing von: %w", importer.LeaveFileName, i, err)
		}
		to, err := time.Parse(domain.DateLayout, rec.Bis)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: parsing bis: %w", importer.LeaveFileName, i, err)
		}
		entries = append(entries, &domain.LeaveEntry{
			ID:           strconv.Itoa(i + 1),
			From:         from,
			To:           to,
			BusinessDays: rec.Tage,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].From.Before(entries[j].From)
	})
	return entries, nil
}

func (r *JSONLeaveRepo) DeleteAll(_ context.Context) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.write(importer.LeaveFileName, []importer.LeaveRecord{})
}
