package leave

import (
	"log/slog"

	"github.com/gmt-app/puantaj-backend-go/internal/domain/leave"
	"github.com/gmt-app/puantaj-backend-go/internal/domain/schedule"
	"github.com/gmt-app/puantaj-backend-go/internal/domain/timesheet"
	"github.com/gmt-app/puantaj-backend-go/internal/pkg/dateutil"
)

// Facts carries both leave signals for a date range. The two sources stay
// separate: explicit leave periods and shift-plan weekly-rest flags are
// merged by the day resolver's precedence, not here.
type Facts struct {
	Leave      map[timesheet.DayKey]string
	WeeklyRest map[timesheet.DayKey]bool
}

func (f Facts) LeaveTypeOn(key timesheet.DayKey) (string, bool) {
	t, ok := f.Leave[key]
	return t, ok
}

func (f Facts) IsWeeklyRest(key timesheet.DayKey) bool {
	if f.WeeklyRest[key] {
		return true
	}
	// A weekly-rest period filed through the leave screen counts too.
	return f.Leave[key] == leave.TypeWeeklyRest
}

// BuildFacts expands approved leave periods and weekly-rest plan entries
// into per-day facts, bounded by [from, to] when both are set.
//
// A period with a missing boundary date is skipped entirely and logged as a
// data-quality issue; a period whose end precedes its start expands to zero
// days. Later records overwrite earlier ones for the same day.
func BuildFacts(periods []leave.Period, planEntries []schedule.PlanEntry, from, to dateutil.Date) Facts {
	facts := Facts{
		Leave:      make(map[timesheet.DayKey]string),
		WeeklyRest: make(map[timesheet.DayKey]bool),
	}
	bounded := !from.IsZero() && !to.IsZero()

	for _, p := range periods {
		if p.Status != leave.PeriodStatusApproved {
			continue
		}
		if p.StartDate.IsZero() || p.EndDate.IsZero() {
			slog.Warn("skipping leave period with missing dates",
				"period_id", p.ID, "person_id", p.PersonID)
			continue
		}
		for _, day := range dateutil.Range(p.StartDate, p.EndDate) {
			if bounded && (day.Before(from) || day.After(to)) {
				continue
			}
			facts.Leave[timesheet.DayKey{PersonID: p.PersonID, Date: day}] = p.Type
		}
	}

	for _, e := range planEntries {
		if !e.IsWeeklyRest {
			continue
		}
		if e.Date.IsZero() {
			slog.Warn("skipping weekly-rest plan entry with missing date",
				"entry_id", e.ID, "person_id", e.PersonID)
			continue
		}
		if bounded && (e.Date.Before(from) || e.Date.After(to)) {
			continue
		}
		facts.WeeklyRest[timesheet.DayKey{PersonID: e.PersonID, Date: e.Date}] = true
	}

	return facts
}
