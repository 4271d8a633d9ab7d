package repository

import (
	"context"

	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/alexanderramin/punchclock/internal/importer"
)

// JSONSettingsRepo implements SettingsRepo on settings.json.
type JSONSettingsRepo struct {
	store *JSONStore
}

// Get falls back to defaults when the file is missing or unreadable.
func (r *JSONSettingsRepo) Get(_ context.Context) (domain.Settings, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var rec importer.SettingsRecord
	found, err := r.store.read(importer.SettingsFileName, &rec)
	if err != nil || !found {
		return domain.DefaultSettings(), nil
	}
	return importer.SettingsFromRecord(rec), nil
}

func (r *JSONSettingsRepo) Save(_ context.Context, s domain.Settings) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.write(importer.SettingsFileName, importer.SettingsToRecord(s))
}
