package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/alexanderramin/punchclock/internal/app"
	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/alexanderramin/punchclock/internal/repository"
	"github.com/alexanderramin/punchclock/internal/service"
	"github.com/alexanderramin/punchclock/internal/worktime"
)

// Handler holds the use cases the routes delegate to.
type Handler struct {
	Status   app.StatusUseCase
	Punches  app.PunchUseCase
	Settings app.SettingsUseCase
	Leave    app.LeaveUseCase
	Holidays app.HolidayUseCase

	// Location interprets timestamps that carry no zone.
	Location *time.Location
	// Now overrides the clock; nil uses time.Now.
	Now func() time.Time
}

func (h *Handler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

func (h *Handler) location() *time.Location {
	if h.Location == nil {
		return time.Local
	}
	return h.Location
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) status(r *http.Request) (*app.StatusResponse, error) {
	now := h.now()
	return h.Status.GetStatus(r.Context(), app.StatusRequest{Now: &now})
}

func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	resp, err := h.status(r)
	if err != nil {
		writeServiceError(w, "Failed to compute status", err)
		return
	}
	writeJSON(w, http.StatusOK, ToStatusDTO(resp))
}

func (h *Handler) GetWidget(w http.ResponseWriter, r *http.Request) {
	resp, err := h.status(r)
	if err != nil {
		writeServiceError(w, "Failed to compute status", err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(resp.WidgetLine() + "\n"))
}

func (h *Handler) ListPunches(w http.ResponseWriter, r *http.Request) {
	punches, err := h.Punches.List(r.Context())
	if err != nil {
		writeServiceError(w, "Failed to list punches", err)
		return
	}
	out := make([]PunchDTO, 0, len(punches))
	for _, p := range punches {
		out = append(out, toPunchDTO(p))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) RecordPunch(w http.ResponseWriter, r *http.Request) {
	var body PunchRequest
	if err := decodeOptionalBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	req := app.PunchRequest{HomeOffice: body.HomeOffice, Force: body.Force}
	if body.Kind != "" {
		kind, err := domain.ParsePunchKind(body.Kind)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid punch kind", err)
			return
		}
		req.Kind = &kind
	}
	if body.At != "" {
		at, err := h.parseInstant(body.At)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid timestamp", err)
			return
		}
		req.At = &at
	} else {
		now := h.now()
		req.At = &now
	}

	resp, err := h.Punches.Punch(r.Context(), req)
	if err != nil {
		writeServiceError(w, "Failed to record punch", err)
		return
	}
	writeJSON(w, http.StatusCreated, PunchResponseDTO{
		Punch:         toPunchDTO(resp.Punch),
		Active:        resp.Active,
		WorkedMinutes: int(resp.Worked / time.Minute),
	})
}

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	s, err := h.Settings.Get(r.Context())
	if err != nil {
		writeServiceError(w, "Failed to load settings", err)
		return
	}
	writeJSON(w, http.StatusOK, toSettingsDTO(s))
}

func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var body UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	patch := app.SettingsPatch{
		BaselineMinutes:  body.BaselineMinutes,
		HomeOfficeActive: body.HomeOfficeActive,
	}
	if body.ReferenceDate != nil {
		if *body.ReferenceDate == "" {
			patch.ClearReferenceDate = true
		} else {
			d, err := time.Parse(domain.DateLayout, *body.ReferenceDate)
			if err != nil {
				writeError(w, http.StatusBadRequest, "Invalid reference_date", err)
				return
			}
			patch.ReferenceDate = &d
		}
	}

	s, err := h.Settings.Update(r.Context(), patch)
	if err != nil {
		writeServiceError(w, "Failed to update settings", err)
		return
	}
	writeJSON(w, http.StatusOK, toSettingsDTO(s))
}

func (h *Handler) ListLeave(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Leave.List(r.Context())
	if err != nil {
		writeServiceError(w, "Failed to list leave", err)
		return
	}
	out := make([]LeaveDTO, 0, len(entries))
	for _, l := range entries {
		out = append(out, toLeaveDTO(l))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) AddLeave(w http.ResponseWriter, r *http.Request) {
	var body AddLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	from, err := time.Parse(domain.DateLayout, body.From)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid from date", err)
		return
	}
	to, err := time.Parse(domain.DateLayout, body.To)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid to date", err)
		return
	}

	entry, err := h.Leave.Add(r.Context(), app.AddLeaveRequest{From: from, To: to})
	if err != nil {
		writeServiceError(w, "Failed to add leave", err)
		return
	}
	writeJSON(w, http.StatusCreated, toLeaveDTO(entry))
}

func (h *Handler) GetLeaveBalance(w http.ResponseWriter, r *http.Request) {
	year, err := h.yearParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid year", err)
		return
	}
	b, err := h.Leave.Balance(r.Context(), year)
	if err != nil {
		writeServiceError(w, "Failed to compute leave balance", err)
		return
	}
	writeJSON(w, http.StatusOK, toLeaveBalanceDTO(b))
}

func (h *Handler) ListHolidays(w http.ResponseWriter, r *http.Request) {
	year, err := h.yearParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid year", err)
		return
	}
	writeJSON(w, http.StatusOK, toHolidayDTOs(h.Holidays.List(year)))
}

// yearParam reads ?year=, defaulting to the current year.
func (h *Handler) yearParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("year")
	if raw == "" {
		return h.now().In(h.location()).Year(), nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year < 1 || year > 9999 {
		return 0, errors.New("year must be a number between 1 and 9999")
	}
	return year, nil
}

func (h *Handler) parseInstant(s string) (time.Time, error) {
	if t, ok := worktime.ParseTimestamp(s, h.location()); ok {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// decodeOptionalBody accepts an empty body as the zero value.
func decodeOptionalBody(r *http.Request, v any) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// writeServiceError maps service errors onto HTTP status codes.
func writeServiceError(w http.ResponseWriter, message string, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, message, err)
	case errors.Is(err, service.ErrAlreadyClockedIn), errors.Is(err, service.ErrNotClockedIn):
		writeError(w, http.StatusConflict, message, err)
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, message, err)
	default:
		writeError(w, http.StatusInternalServerError, message, err)
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
