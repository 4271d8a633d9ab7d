package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/alexanderramin/punchclock/internal/importer"
)

// JSONPunchRepo implements PunchRepo on stempel.json. The file carries no
// ids, so a punch's id is its 1-based position in the file.
type JSONPunchRepo struct {
	store *JSONStore
}

func (r *JSONPunchRepo) load() ([]importer.PunchRecord, error) {
	var records []importer.PunchRecord
	if _, err := r.store.read(importer.PunchFileName, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *JSONPunchRepo) Append(_ context.Context, p *domain.PunchEvent) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return err
	}
	records = append(records, importer.PunchToRecord(p))
	if err := r.store.write(importer.PunchFileName, records); err != nil {
		return err
	}
	p.ID = strconv.Itoa(len(records))
	return nil
}

func (r *JSONPunchRepo) List(_ context.Context) ([]*domain.PunchEvent, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return nil, err
	}
	punches := make([]*domain.PunchEvent, 0, len(records))
	for i, rec := range records {
		p, err := importer.PunchFromRecord(rec)
		if err != nil {
			// Unknown kinds cannot take part in pairing.
			continue
		}
		p.ID = strconv.Itoa(i + 1)
		punches = append(punches, p)
	}
	return punches, nil
}

func (r *JSONPunchRepo) Last(ctx context.Context) (*domain.PunchEvent, error) {
	punches, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(punches) == 0 {
		return nil, fmt.Errorf("last punch: %w", ErrNotFound)
	}
	return punches[len(punches)-1], nil
}

func (r *JSONPunchRepo) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return err
	}
	pos, err := strconv.Atoi(id)
	if err != nil || pos < 1 || pos > len(records) {
		return fmt.Errorf("punch %s: %w", id, ErrNotFound)
	}
	records = append(records[:pos-1], records[pos:]...)
	return r.store.write(importer.PunchFileName, records)
}

func (r *JSONPunchRepo) DeleteAll(_ context.Context) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.write(importer.PunchFileName, []importer.PunchRecord{})
}
