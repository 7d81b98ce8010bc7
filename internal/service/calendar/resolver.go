package calendar

import (
	"log/slog"
	"sort"
	"time"

	"github.com/gmt-app/puantaj-backend-go/internal/domain/calendar"
	"github.com/gmt-app/puantaj-backend-go/internal/pkg/dateutil"
)

// HolidayOn returns the name of the public holiday covering d, if any.
// Each definition's span is expanded day by day with calendar-local
// arithmetic; a record with an unparseable start date is skipped.
func HolidayOn(holidays []calendar.Holiday, d dateutil.Date) (string, bool) {
	for _, h := range holidays {
		if _, err := dateutil.ParseDate(h.StartDate); err != nil {
			slog.Warn("skipping holiday with malformed start date",
				"name", h.Name, "start_date", h.StartDate)
			continue
		}
		if h.Covers(d) {
			return h.Name, true
		}
	}
	return "", false
}

// NextOccurrence projects a yearly (month, day) event onto its next
// occurrence as of today. An occurrence earlier this year rolls to next
// year; today itself counts as zero days remaining.
func NextOccurrence(month time.Month, day int, today dateutil.Date) (dateutil.Date, int) {
	occ := dateutil.NewDate(today.Year, month, day)
	if occ.Before(today) {
		occ = dateutil.NewDate(today.Year+1, month, day)
	}
	return occ, today.DaysUntil(occ)
}

// UpcomingFixed filters fixed-date occurrences (public holidays) to those
// starting within horizonDays of today. Records missing a parseable date
// are skipped, not fatal.
func UpcomingFixed(holidays []calendar.Holiday, today dateutil.Date, horizonDays int) []calendar.Occurrence {
	var out []calendar.Occurrence
	for _, h := range holidays {
		start, err := dateutil.ParseDate(h.StartDate)
		if err != nil {
			slog.Warn("skipping holiday with malformed start date",
				"name", h.Name, "start_date", h.StartDate)
			continue
		}
		remaining := today.DaysUntil(start)
		if remaining < 0 || remaining > horizonDays {
			continue
		}
		out = append(out, calendar.Occurrence{
			Kind:          calendar.OccurrenceKindHoliday,
			Label:         h.Name,
			Date:          start,
			DaysRemaining: remaining,
		})
	}
	return out
}

// UpcomingRecurring projects yearly (month, day) events within the horizon.
func UpcomingRecurring(events []calendar.RecurringEvent, today dateutil.Date, horizonDays int) []calendar.Occurrence {
	var out []calendar.Occurrence
	for _, e := range events {
		if e.Day < 1 || e.Day > 31 {
			slog.Warn("skipping recurring event with invalid day",
				"label", e.Label, "day", e.Day)
			continue
		}
		occ, remaining := NextOccurrence(e.Month, e.Day, today)
		if remaining > horizonDays {
			continue
		}
		out = append(out, calendar.Occurrence{
			Kind:          calendar.OccurrenceKindMemorial,
			Label:         e.Label,
			Date:          occ,
			DaysRemaining: remaining,
		})
	}
	return out
}

// SortOccurrences orders ascending by days remaining, keeping the original
// input order for ties.
func SortOccurrences(occs []calendar.Occurrence) {
	sort.SliceStable(occs, func(i, j int) bool {
		return occs[i].DaysRemaining < occs[j].DaysRemaining
	})
}
