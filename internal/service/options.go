package service

import (
	"time"

	"github.com/alexanderramin/punchclock/internal/config"
	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/alexanderramin/punchclock/internal/holiday"
	"github.com/alexanderramin/punchclock/internal/worktime"
)

// Options carries the calendar rules shared by the use cases.
type Options struct {
	Location           *time.Location
	WeekRule           domain.WeekRule
	DailyTargetMinutes int
	ExcludeHolidays    bool
	AnnualLeaveDays    int
	Holidays           holiday.Calendar
}

func DefaultOptions() Options {
	return Options{
		Location:           time.Local,
		WeekRule:           domain.WeekRuleCalendarYear,
		DailyTargetMinutes: worktime.DefaultDailyTargetMinutes,
		AnnualLeaveDays:    30,
		Holidays:           holiday.DefaultCalendar(holiday.Options{CorpusChristi: true}),
	}
}

func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		Location:           cfg.Location,
		WeekRule:           cfg.WeekRule,
		DailyTargetMinutes: cfg.DailyTargetMinutes,
		ExcludeHolidays:    cfg.ExcludeHolidays,
		AnnualLeaveDays:    cfg.AnnualLeaveDays,
		Holidays:           holiday.DefaultCalendar(cfg.Holidays),
	}
}

func (o Options) location() *time.Location {
	if o.Location == nil {
		return time.Local
	}
	return o.Location
}

// now resolves the request instant in the configured location.
func (o Options) now(override *time.Time) time.Time {
	if override != nil {
		return override.In(o.location())
	}
	return time.Now().In(o.location())
}

// businessDayPolicy excludes holidays only when configured to.
func (o Options) businessDayPolicy() worktime.BusinessDayPolicy {
	if !o.ExcludeHolidays {
		return worktime.BusinessDayPolicy{}
	}
	return worktime.BusinessDayPolicy{Holidays: o.Holidays}
}
