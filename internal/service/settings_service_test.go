package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/punchclock/internal/app"
	"github.com/alexanderramin/punchclock/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings_DefaultsWhenNothingStored(t *testing.T) {
	stores, _, _ := setupStores(t)
	svc := NewSettingsService(stores.Settings)

	s, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Zero(t, s.BaselineMinutes)
	assert.Nil(t, s.ReferenceDate)
	assert.False(t, s.HomeOfficeActive)
}

func TestSettings_PatchUpdatesOnlyGivenFields(t *testing.T) {
	stores := setupJSONStores(t)
	ctx := context.Background()
	svc := NewSettingsService(stores.Settings)

	baseline := -90
	ref := testutil.At(2026, 1, 5, 13, 45)
	_, err := svc.Update(ctx, app.SettingsPatch{BaselineMinutes: &baseline, ReferenceDate: &ref})
	require.NoError(t, err)

	on := true
	updated, err := svc.Update(ctx, app.SettingsPatch{HomeOfficeActive: &on})
	require.NoError(t, err)
	assert.Equal(t, -90, updated.BaselineMinutes)
	assert.True(t, updated.HomeOfficeActive)
	require.NotNil(t, updated.ReferenceDate)
	assert.Equal(t, "2026-01-05", updated.ReferenceDateString())

	stored, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2026-01-05", stored.ReferenceDateString())
	assert.True(t, stored.HomeOfficeActive)
}

func TestSettings_ClearReferenceDate(t *testing.T) {
	stores, _, _ := setupStores(t)
	ctx := context.Background()
	svc := NewSettingsService(stores.Settings)

	ref := testutil.Day(2026, 1, 5)
	_, err := svc.Update(ctx, app.SettingsPatch{ReferenceDate: &ref})
	require.NoError(t, err)

	_, err = svc.Update(ctx, app.SettingsPatch{ReferenceDate: &ref, ClearReferenceDate: true})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "reference_date", verr.Field)

	cleared, err := svc.Update(ctx, app.SettingsPatch{ClearReferenceDate: true})
	require.NoError(t, err)
	assert.Nil(t, cleared.ReferenceDate)
}
