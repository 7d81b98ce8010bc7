package calendar

import (
	"time"

	"github.com/gmt-app/puantaj-backend-go/internal/pkg/dateutil"
)

// Holiday is a public holiday starting at StartDate and covering
// DurationDays consecutive calendar days.
type Holiday struct {
	StartDate    string // YYYY-MM-DD; unparseable records are skipped
	Name         string
	DurationDays int
}

// Covers reports whether the holiday's span includes d. A record with a
// malformed start date covers nothing.
func (h Holiday) Covers(d dateutil.Date) bool {
	start, err := dateutil.ParseDate(h.StartDate)
	if err != nil {
		return false
	}
	days := h.DurationDays
	if days < 1 {
		days = 1
	}
	end := start.AddDays(days - 1)
	return !d.Before(start) && !d.After(end)
}

// RecurringEvent is a yearly event identified by month and day only
// (memorial days, anniversaries).
type RecurringEvent struct {
	Month time.Month
	Day   int
	Label string
}

type OccurrenceKind string

const (
	OccurrenceKindHoliday  OccurrenceKind = "holiday"
	OccurrenceKindMemorial OccurrenceKind = "memorial"
	OccurrenceKindBirthday OccurrenceKind = "birthday"
)

// Occurrence is one projected upcoming event.
type Occurrence struct {
	Kind          OccurrenceKind
	Label         string
	Date          dateutil.Date
	DaysRemaining int            // 0 means today
	PersonID      string         // set for birthdays
}
