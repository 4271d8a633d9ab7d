package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/alexanderramin/punchclock/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type backend struct {
	name string
	open func(t *testing.T) Stores
}

func backends() []backend {
	return []backend{
		{"sqlite", func(t *testing.T) Stores {
			database := testutil.NewTestDB(t)
			return Stores{
				Punches:  NewSQLitePunchRepo(database),
				Settings: NewSQLiteSettingsRepo(database),
				Leave:    NewSQLiteLeaveRepo(database),
			}
		}},
		{"json", func(t *testing.T) Stores {
			store, err := NewJSONStore(t.TempDir())
			require.NoError(t, err)
			return store.Stores()
		}},
	}
}

func TestStores_PunchesKeepAppendOrder(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			ctx := context.Background()
			repo := b.open(t).Punches

			// Appended out of chronological order on purpose.
			late := testutil.NewTestPunch(domain.PunchStart, testutil.At(2024, 1, 2, 8, 0), testutil.WithHomeOffice())
			early := testutil.NewTestPunch(domain.PunchEnd, testutil.At(2024, 1, 1, 16, 0))
			require.NoError(t, repo.Append(ctx, late))
			require.NoError(t, repo.Append(ctx, early))
			assert.NotEmpty(t, late.ID)

			got, err := repo.List(ctx)
			require.NoError(t, err)
			require.Len(t, got, 2)
			assert.Equal(t, "2024-01-02 08:00:00", got[0].Timestamp)
			assert.True(t, got[0].HomeOffice)
			assert.Equal(t, domain.PunchEnd, got[1].Kind)

			last, err := repo.Last(ctx)
			require.NoError(t, err)
			assert.Equal(t, "2024-01-01 16:00:00", last.Timestamp)
		})
	}
}

func TestStores_PunchLastOnEmpty(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			_, err := b.open(t).Punches.Last(context.Background())
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestStores_PunchDelete(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			ctx := context.Background()
			repo := b.open(t).Punches
			testutil.SeedWorkday(t, repo, testutil.At(2024, 1, 1, 8, 0), testutil.At(2024, 1, 1, 16, 0))

			last, err := repo.Last(ctx)
			require.NoError(t, err)
			require.NoError(t, repo.Delete(ctx, last.ID))

			got, err := repo.List(ctx)
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, domain.PunchStart, got[0].Kind)

			assert.ErrorIs(t, repo.Delete(ctx, "does-not-exist"), ErrNotFound)

			require.NoError(t, repo.DeleteAll(ctx))
			got, err = repo.List(ctx)
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestStores_SettingsDefaultsAndSave(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			ctx := context.Background()
			repo := b.open(t).Settings

			s, err := repo.Get(ctx)
			require.NoError(t, err)
			assert.Equal(t, domain.DefaultSettings(), s)

			ref := testutil.Day(2024, 1, 8)
			require.NoError(t, repo.Save(ctx, domain.Settings{BaselineMinutes: -90, ReferenceDate: &ref, HomeOfficeActive: true}))

			s, err = repo.Get(ctx)
			require.NoError(t, err)
			assert.Equal(t, -90, s.BaselineMinutes)
			assert.True(t, s.HomeOfficeActive)
			require.NotNil(t, s.ReferenceDate)
			assert.Equal(t, "2024-01-08", s.ReferenceDateString())

			require.NoError(t, repo.Save(ctx, domain.Settings{BaselineMinutes: 5}))
			s, err = repo.Get(ctx)
			require.NoError(t, err)
			assert.Nil(t, s.ReferenceDate, "clearing the reference date persists")
		})
	}
}

func TestStores_Leave(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			ctx := context.Background()
			repo := b.open(t).Leave

			require.NoError(t, repo.Create(ctx, testutil.NewTestLeave(testutil.Day(2024, 8, 5), testutil.Day(2024, 8, 9), testutil.WithBusinessDays(5))))
			require.NoError(t, repo.Create(ctx, testutil.NewTestLeave(testutil.Day(2024, 5, 6), testutil.Day(2024, 5, 6), testutil.WithBusinessDays(1))))

			got, err := repo.List(ctx)
			require.NoError(t, err)
			require.Len(t, got, 2)
			assert.Equal(t, time.May, got[0].From.Month(), "sorted by start")
			assert.Equal(t, 5, got[1].BusinessDays)
			assert.NotEmpty(t, got[0].ID)

			require.NoError(t, repo.DeleteAll(ctx))
			got, err = repo.List(ctx)
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}
