package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/alexanderramin/punchclock/internal/worktime"
)

// Converted holds domain objects ready for persistence.
type Converted struct {
	Punches  []*domain.PunchEvent
	Settings *domain.Settings
	Leave    []*domain.LeaveEntry

	// SkippedPunches counts events dropped for an unreadable timestamp.
	SkippedPunches int
}

// Convert transforms a validated Bundle into domain objects. Timestamps are
// rewritten in the canonical layout with seconds; punches whose timestamp
// cannot be parsed are dropped and counted. Leave day counts are kept as
// recorded. Call ValidateBundle first.
func Convert(b *Bundle) (*Converted, error) {
	out := &Converted{
		Punches: make([]*domain.PunchEvent, 0, len(b.Punches)),
		Leave:   make([]*domain.LeaveEntry, 0, len(b.Leave)),
	}
	now := time.Now().UTC()

	for i, p := range b.Punches {
		kind, err := domain.ParsePunchKind(p.Typ)
		if err != nil {
			return nil, fmt.Errorf("punch %d: %w", i, err)
		}
		at, ok := worktime.ParseTimestamp(p.Zeit, time.UTC)
		if !ok {
			out.SkippedPunches++
			continue
		}
		out.Punches = append(out.Punches, &domain.PunchEvent{
			Kind:       kind,
			Timestamp:  at.Format(domain.TimestampLayout),
			HomeOffice: p.Homeoffice,
			CreatedAt:  now,
		})
	}

	if b.Settings != nil {
		s := SettingsFromRecord(*b.Settings)
		out.Settings = &s
	}

	for i, l := range b.Leave {
		from, err := time.Parse(domain.DateLayout, l.Von)
		if err != nil {
			return nil, fmt.Errorf("leave %d: parsing von: %w", i, err)
		}
		to, err := time.Parse(domain.DateLayout, l.Bis)
		if err != nil {
			return nil, fmt.Errorf("leave %d: parsing bis: %w", i, err)
		}
		out.Leave = append(out.Leave, &domain.LeaveEntry{
			From:         from,
			To:           to,
			BusinessDays: l.Tage,
			CreatedAt:    now,
		})
	}
	return out, nil
}

// SettingsFromRecord maps settings.json onto domain settings. An unreadable
// standDatum leaves the reference date unset.
func SettingsFromRecord(r SettingsRecord) domain.Settings {
	s := domain.DefaultSettings()
	s.BaselineMinutes = r.StartwertMinuten
	s.HomeOfficeActive = r.HomeofficeAktiv
	if r.StandDatum != "" {
		if d, err := time.Parse(domain.DateLayout, r.StandDatum); err == nil {
			s.ReferenceDate = &d
		}
	}
	return s
}

// SettingsToRecord is the inverse of SettingsFromRecord.
func SettingsToRecord(s domain.Settings) SettingsRecord {
	return SettingsRecord{
		StartwertMinuten: s.BaselineMinutes,
		StandDatum:       s.ReferenceDateString(),
		HomeofficeAktiv:  s.HomeOfficeActive,
	}
}

// PunchToRecord renders a punch the way stempel.json spells it.
func PunchToRecord(p *domain.PunchEvent) PunchRecord {
	typ := LegacyStart
	if p.Kind == domain.PunchEnd {
		typ = LegacyEnd
	}
	return PunchRecord{Typ: typ, Zeit: p.Timestamp, Homeoffice: p.HomeOffice}
}

// PunchFromRecord keeps the stored timestamp text as is. Unknown kinds are
// reported so the caller can decide whether to skip the record.
func PunchFromRecord(r PunchRecord) (*domain.PunchEvent, error) {
	kind, err := domain.ParsePunchKind(r.Typ)
	if err != nil {
		return nil, err
	}
	return &domain.PunchEvent{Kind: kind, Timestamp: r.Zeit, HomeOffice: r.Homeoffice}, nil
}

func LeaveToRecord(l *domain.LeaveEntry) LeaveRecord {
	return LeaveRecord{
		Von:  l.From.Format(domain.DateLayout),
		Bis:  l.To.Format(domain.DateLayout),
		Tage: l.BusinessDays,
	}
}

// FromDomain builds a bundle for export.
func FromDomain(punches []*domain.PunchEvent, settings domain.Settings, leave []*domain.LeaveEntry) *Bundle {
	b := &Bundle{
		Punches: make([]PunchRecord, 0, len(punches)),
		Leave:   make([]LeaveRecord, 0, len(leave)),
	}
	for _, p := range punches {
		b.Punches = append(b.Punches, PunchToRecord(p))
	}
	rec := SettingsToRecord(settings)
	b.Settings = &rec
	for _, l := range leave {
		b.Leave = append(b.Leave, LeaveToRecord(l))
	}
	return b
}
