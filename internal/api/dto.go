package api

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/alexanderramin/punchclock/internal/app"
	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/alexanderramin/punchclock/internal/holiday"
)

// PeriodDTO is one aggregated period. Hours is a decimal string such as "8.5".
type PeriodDTO struct {
	Minutes int             `json:"minutes" yaml:"minutes"`
	Text    string          `json:"text" yaml:"text"`
	Hours   decimal.Decimal `json:"hours" yaml:"hours"`
}

type OvertimeDTO struct {
	BalanceMinutes  int    `json:"balance_minutes" yaml:"balance_minutes"`
	Text            string `json:"text" yaml:"text"`
	RequiredMinutes int    `json:"required_minutes" yaml:"required_minutes"`
	ActualMinutes   int    `json:"actual_minutes" yaml:"actual_minutes"`
	BusinessDays    int    `json:"business_days" yaml:"business_days"`
	CountingStart   string `json:"counting_start" yaml:"counting_start"`
}

type LeaveBalanceDTO struct {
	Year      int `json:"year" yaml:"year"`
	Allowance int `json:"allowance" yaml:"allowance"`
	Taken     int `json:"taken" yaml:"taken"`
	Remaining int `json:"remaining" yaml:"remaining"`
}

type HolidayDTO struct {
	Date string `json:"date" yaml:"date"`
	Name string `json:"name" yaml:"name"`
}

type StatusDTO struct {
	GeneratedAt     time.Time       `json:"generated_at" yaml:"generated_at"`
	Active          bool            `json:"active" yaml:"active"`
	ActiveSince     *string         `json:"active_since,omitempty" yaml:"active_since,omitempty"`
	HomeOffice      bool            `json:"home_office" yaml:"home_office"`
	Today           PeriodDTO       `json:"today" yaml:"today"`
	Week            PeriodDTO       `json:"week" yaml:"week"`
	Month           PeriodDTO       `json:"month" yaml:"month"`
	Year            PeriodDTO       `json:"year" yaml:"year"`
	SinceReference  PeriodDTO       `json:"since_reference" yaml:"since_reference"`
	Overtime        OvertimeDTO     `json:"overtime" yaml:"overtime"`
	BaselineMinutes int             `json:"baseline_minutes" yaml:"baseline_minutes"`
	ReferenceDate   string          `json:"reference_date,omitempty" yaml:"reference_date,omitempty"`
	Leave           LeaveBalanceDTO `json:"leave" yaml:"leave"`
	NextHoliday     *HolidayDTO     `json:"next_holiday,omitempty" yaml:"next_holiday,omitempty"`
	PunchCount      int             `json:"punch_count" yaml:"punch_count"`
	Widget          string          `json:"widget" yaml:"widget"`
}

type PunchDTO struct {
	ID         string `json:"id" yaml:"id"`
	Kind       string `json:"kind" yaml:"kind"`
	Timestamp  string `json:"timestamp" yaml:"timestamp"`
	HomeOffice bool   `json:"home_office" yaml:"home_office"`
}

// PunchRequest is the body of POST /api/punches. An empty kind toggles. At
// accepts RFC 3339 or "YYYY-MM-DD HH:MM[:SS]" in the configured zone.
type PunchRequest struct {
	Kind       string `json:"kind,omitempty" yaml:"kind,omitempty"`
	At         string `json:"at,omitempty" yaml:"at,omitempty"`
	HomeOffice *bool  `json:"home_office,omitempty" yaml:"home_office,omitempty"`
	Force      bool   `json:"force,omitempty" yaml:"force,omitempty"`
}

type PunchResponseDTO struct {
	Punch         PunchDTO `json:"punch" yaml:"punch"`
	Active        bool     `json:"active" yaml:"active"`
	WorkedMinutes int      `json:"worked_minutes,omitempty" yaml:"worked_minutes,omitempty"`
}

type SettingsDTO struct {
	BaselineMinutes  int    `json:"baseline_minutes" yaml:"baseline_minutes"`
	ReferenceDate    string `json:"reference_date" yaml:"reference_date"`
	HomeOfficeActive bool   `json:"home_office_active" yaml:"home_office_active"`
}

// UpdateSettingsRequest patches settings. An empty reference_date clears it.
type UpdateSettingsRequest struct {
	BaselineMinutes  *int    `json:"baseline_minutes,omitempty" yaml:"baseline_minutes,omitempty"`
	ReferenceDate    *string `json:"reference_date,omitempty" yaml:"reference_date,omitempty"`
	HomeOfficeActive *bool   `json:"home_office_active,omitempty" yaml:"home_office_active,omitempty"`
}

type LeaveDTO struct {
	ID           string `json:"id" yaml:"id"`
	From         string `json:"from" yaml:"from"`
	To           string `json:"to" yaml:"to"`
	BusinessDays int    `json:"business_days" yaml:"business_days"`
}

type AddLeaveRequest struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

type ErrorResponse struct {
	Error   string `json:"error" yaml:"error"`
	Details string `json:"details,omitempty" yaml:"details,omitempty"`
}

func toPeriodDTO(p app.PeriodView) PeriodDTO {
	return PeriodDTO{
		Minutes: int(p.Duration / time.Minute),
		Text:    p.Text,
		Hours:   p.Hours,
	}
}

// ToStatusDTO flattens a status snapshot for JSON and YAML output.
func ToStatusDTO(s *app.StatusResponse) StatusDTO {
	dto := StatusDTO{
		GeneratedAt:    s.GeneratedAt,
		Active:         s.Active,
		HomeOffice:     s.HomeOffice,
		Today:          toPeriodDTO(s.Today),
		Week:           toPeriodDTO(s.Week),
		Month:          toPeriodDTO(s.Month),
		Year:           toPeriodDTO(s.Year),
		SinceReference: toPeriodDTO(s.SinceReference),
		Overtime: OvertimeDTO{
			BalanceMinutes:  s.Overtime.BalanceMinutes,
			Text:            s.Overtime.Text,
			RequiredMinutes: s.Overtime.RequiredMinutes,
			ActualMinutes:   s.Overtime.ActualMinutes,
			BusinessDays:    s.Overtime.BusinessDays,
		},
		BaselineMinutes: s.BaselineMinutes,
		Leave:           toLeaveBalanceDTO(s.Leave),
		PunchCount:      s.PunchCount,
		Widget:          s.WidgetLine(),
	}
	if !s.Overtime.CountingStart.IsZero() {
		dto.Overtime.CountingStart = s.Overtime.CountingStart.Format(domain.DateLayout)
	}
	if s.ActiveSince != nil {
		since := s.ActiveSince.Format(domain.TimestampLayout)
		dto.ActiveSince = &since
	}
	if s.ReferenceDate != nil {
		dto.ReferenceDate = s.ReferenceDate.Format(domain.DateLayout)
	}
	if s.NextHoliday != nil {
		dto.NextHoliday = &HolidayDTO{Date: s.NextHoliday.Date.Format(domain.DateLayout), Name: s.NextHoliday.Name}
	}
	return dto
}

func toPunchDTO(p *domain.PunchEvent) PunchDTO {
	return PunchDTO{
		ID:         p.ID,
		Kind:       string(p.Kind),
		Timestamp:  p.Timestamp,
		HomeOffice: p.HomeOffice,
	}
}

func toSettingsDTO(s domain.Settings) SettingsDTO {
	return SettingsDTO{
		BaselineMinutes:  s.BaselineMinutes,
		ReferenceDate:    s.ReferenceDateString(),
		HomeOfficeActive: s.HomeOfficeActive,
	}
}

func toLeaveDTO(l *domain.LeaveEntry) LeaveDTO {
	return LeaveDTO{
		ID:           l.ID,
		From:         l.From.Format(domain.DateLayout),
		To:           l.To.Format(domain.DateLayout),
		BusinessDays: l.BusinessDays,
	}
}

func toLeaveBalanceDTO(b domain.LeaveBalance) LeaveBalanceDTO {
	return LeaveBalanceDTO{Year: b.Year, Allowance: b.Allowance, Taken: b.Taken, Remaining: b.Remaining}
}

func toHolidayDTOs(hs []holiday.Holiday) []HolidayDTO {
	out := make([]HolidayDTO, 0, len(hs))
	for _, h := range hs {
		out = append(out, HolidayDTO{Date: h.Date.Format(domain.DateLayout), Name: h.Name})
	}
	return out
}
