package formatter

import (
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/alexanderramin/punchclock/internal/worktime"
)

// FormatPunchLog renders the most recent days with work as a tree of
// sessions, newest day first. The open session, if any, runs until now.
func FormatPunchLog(events []*domain.PunchEvent, now time.Time, loc *time.Location, days int) string {
	plain := make([]domain.PunchEvent, 0, len(events))
	for _, ev := range events {
		plain = append(plain, *ev)
	}
	open := worktime.CurrentSession(plain, loc)
	intervals := worktime.PairEvents(plain, open, now, loc)
	if len(intervals) == 0 {
		return Dim("No sessions recorded.") + "\n"
	}
	totals := worktime.BucketByDay(intervals, loc)

	byDay := make(map[string][]worktime.Interval)
	for _, iv := range intervals {
		key := worktime.DayKey(iv.Start)
		byDay[key] = append(byDay[key], iv)
	}
	keys := make([]string, 0, len(byDay))
	for k := range byDay {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	if days > 0 && len(keys) > days {
		keys = keys[:days]
	}

	var items []TreeItem
	for _, key := range keys {
		day, _ := time.ParseInLocation(domain.DateLayout, key, loc)
		items = append(items, TreeItem{
			Title:  Bold(HumanDayFrom(day, now)),
			Detail: worktime.FormatDuration(totals[key]),
		})
		sessions := byDay[key]
		for i, iv := range sessions {
			running := open.Active && iv.End.Equal(now)
			end := worktime.ClockTime(iv.End)
			if running {
				end = "now"
			}
			items = append(items, TreeItem{
				Title:  fmt.Sprintf("%s - %s", worktime.ClockTime(iv.Start), end),
				Level:  1,
				IsLast: i == len(sessions)-1,
				Active: running,
				Detail: worktime.FormatDuration(iv.Duration()),
			})
		}
	}
	return RenderTree(items)
}

// FormatPunchTable lists raw punches in recorded order.
func FormatPunchTable(events []*domain.PunchEvent) string {
	if len(events) == 0 {
		return Dim("No punches recorded.") + "\n"
	}
	rows := make([][]string, 0, len(events))
	for _, ev := range events {
		kind := StyleGreen.Render(string(ev.Kind))
		if ev.Kind == domain.PunchEnd {
			kind = StyleYellow.Render(string(ev.Kind))
		}
		ho := ""
		if ev.HomeOffice {
			ho = StylePurple.Render("⌂")
		}
		rows = append(rows, []string{TruncID(ev.ID), kind, ev.Timestamp, ho})
	}
	return RenderTable([]string{"ID", "KIND", "TIME", "HO"}, rows)
}
