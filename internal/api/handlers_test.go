package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/punchclock/internal/repository"
	"github.com/alexanderramin/punchclock/internal/service"
	"github.com/alexanderramin/punchclock/internal/testutil"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)

func newTestRouter(t *testing.T) (*chi.Mux, repository.Stores) {
	t.Helper()
	stores := repository.NewSQLiteStores(testutil.NewTestDB(t))
	opts := service.DefaultOptions()
	opts.Location = time.UTC

	h := &Handler{
		Status:   service.NewStatusService(stores, opts),
		Punches:  service.NewPunchService(stores.Punches, stores.Settings, opts),
		Settings: service.NewSettingsService(stores.Settings),
		Leave:    service.NewLeaveService(stores.Leave, opts),
		Holidays: service.NewHolidayService(opts),
		Location: time.UTC,
		Now:      func() time.Time { return fixedNow },
	}
	return NewRouter(h), stores
}

func do(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	r, _ := newTestRouter(t)
	rec := do(t, r, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestStatus_AfterWorkday(t *testing.T) {
	r, stores := newTestRouter(t)
	testutil.SeedWorkday(t, stores.Punches, testutil.At(2026, 3, 2, 8, 0), testutil.At(2026, 3, 2, 16, 30))

	rec := do(t, r, http.MethodGet, "/api/status", "")
	require.Equal(t, http.StatusOK, rec.Code)
	status := decodeBody[StatusDTO](t, rec)

	assert.False(t, status.Active)
	assert.Equal(t, 510, status.Today.Minutes)
	assert.Equal(t, "8h 30min", status.Today.Text)
	assert.Equal(t, "8.5", status.Today.Hours.String())
	assert.Equal(t, "Heute: 8h 30min", status.Widget)
	assert.Equal(t, 2, status.PunchCount)
	require.NotNil(t, status.NextHoliday)
	assert.Equal(t, "2026-04-03", status.NextHoliday.Date)
}

func TestWidget_PlainText(t *testing.T) {
	r, _ := newTestRouter(t)
	rec := do(t, r, http.MethodGet, "/api/widget", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Heute: 0h 0min\n", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
}

func TestRecordPunch_ToggleAndConflict(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := do(t, r, http.MethodPost, "/api/punches", "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	first := decodeBody[PunchResponseDTO](t, rec)
	assert.Equal(t, "Start", first.Punch.Kind)
	assert.Equal(t, "2026-03-02 18:00:00", first.Punch.Timestamp)
	assert.True(t, first.Active)

	rec = do(t, r, http.MethodPost, "/api/punches", `{"kind":"start"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, r, http.MethodPost, "/api/punches", `{"kind":"end","at":"2026-03-02 17:00"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "end before the open start")

	rec = do(t, r, http.MethodPost, "/api/punches", `{"kind":"end","at":"2026-03-02 19:30"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	second := decodeBody[PunchResponseDTO](t, rec)
	assert.Equal(t, "End", second.Punch.Kind)
	assert.Equal(t, 90, second.WorkedMinutes)

	rec = do(t, r, http.MethodGet, "/api/punches", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]PunchDTO](t, rec), 2)
}

func TestRecordPunch_BadInput(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := do(t, r, http.MethodPost, "/api/punches", `{"kind":"lunch"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid punch kind", decodeBody[ErrorResponse](t, rec).Error)

	rec = do(t, r, http.MethodPost, "/api/punches", `{"at":"yesterday"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, r, http.MethodPost, "/api/punches", `{"kind":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSettings_UpdateAndClear(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := do(t, r, http.MethodPut, "/api/settings", `{"baseline_minutes":45,"reference_date":"2026-01-05","home_office_active":true}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, SettingsDTO{BaselineMinutes: 45, ReferenceDate: "2026-01-05", HomeOfficeActive: true}, decodeBody[SettingsDTO](t, rec))

	rec = do(t, r, http.MethodPut, "/api/settings", `{"reference_date":""}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "", decodeBody[SettingsDTO](t, rec).ReferenceDate)

	rec = do(t, r, http.MethodPut, "/api/settings", `{"reference_date":"05.01.2026"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, r, http.MethodGet, "/api/settings", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 45, decodeBody[SettingsDTO](t, rec).BaselineMinutes)
}

func TestLeave_AddListBalance(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := do(t, r, http.MethodPost, "/api/leave", `{"from":"2026-05-04","to":"2026-05-08"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, 5, decodeBody[LeaveDTO](t, rec).BusinessDays)

	rec = do(t, r, http.MethodPost, "/api/leave", `{"from":"2026-05-08","to":"2026-05-04"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, r, http.MethodGet, "/api/leave", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]LeaveDTO](t, rec), 1)

	rec = do(t, r, http.MethodGet, "/api/leave/balance", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, LeaveBalanceDTO{Year: 2026, Allowance: 30, Taken: 5, Remaining: 25}, decodeBody[LeaveBalanceDTO](t, rec))
}

func TestHolidays_ByYear(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := do(t, r, http.MethodGet, "/api/holidays?year=2027", "")
	require.Equal(t, http.StatusOK, rec.Code)
	holidays := decodeBody[[]HolidayDTO](t, rec)
	require.NotEmpty(t, holidays)
	assert.Equal(t, HolidayDTO{Date: "2027-01-01", Name: "Neujahr"}, holidays[0])

	rec = do(t, r, http.MethodGet, "/api/holidays?year=abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
