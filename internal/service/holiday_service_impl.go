package service

import (
	"time"

	"github.com/alexanderramin/punchclock/internal/holiday"
)

type holidayService struct {
	calendar holiday.Calendar
}

func NewHolidayService(opts Options) HolidayService {
	return &holidayService{calendar: opts.Holidays}
}

func (s *holidayService) List(year int) []holiday.Holiday {
	return s.calendar.ForYear(year)
}

func (s *holidayService) Upcoming(from time.Time, n int) []holiday.Holiday {
	return s.calendar.Upcoming(from, n)
}
