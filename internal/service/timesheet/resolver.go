package timesheet

import (
	"time"

	"github.com/gmt-app/puantaj-backend-go/internal/domain/attendance"
	"github.com/gmt-app/puantaj-backend-go/internal/domain/schedule"
	"github.com/gmt-app/puantaj-backend-go/internal/domain/timesheet"
	"github.com/gmt-app/puantaj-backend-go/internal/pkg/dateutil"
)

// ResolveDayInput carries every fact the resolver needs for one person-day.
// The caller assembles it from the calendar resolver, the leave aggregator
// and the raw event batch; ResolveDay itself is pure.
type ResolveDayInput struct {
	PersonID string
	Date     dateutil.Date
	Today    dateutil.Date

	Events []attendance.Event

	HolidayName     string
	IsHoliday       bool
	HolidayOverride bool

	LeaveType  string
	HasLeave   bool
	WeeklyRest bool

	// Shift is the effective definition for this person-day; nil means no
	// shift is defined at all.
	Shift *schedule.ShiftDefinition
}

// The precedence order is declared once as a rule table and evaluated top
// down; the first matching rule decides the day's kind.
type dayRule struct {
	kind  timesheet.StatusKind
	match func(in ResolveDayInput) bool
}

var dayRules = []dayRule{
	{timesheet.StatusHoliday, func(in ResolveDayInput) bool {
		return in.IsHoliday && !in.HolidayOverride
	}},
	{timesheet.StatusWeeklyRest, func(in ResolveDayInput) bool {
		return in.WeeklyRest
	}},
	{timesheet.StatusLeave, func(in ResolveDayInput) bool {
		return in.HasLeave
	}},
	{timesheet.StatusExcusedAbsence, func(in ResolveDayInput) bool {
		for _, e := range in.Events {
			if e.ExcuseNote != nil && *e.ExcuseNote != "" {
				return true
			}
		}
		return false
	}},
	{timesheet.StatusNormal, func(in ResolveDayInput) bool {
		return true
	}},
}

// ResolveDay reconciles one person-day into its authoritative DayStatus.
// It is deterministic and independent of the ordering of the input events.
func ResolveDay(in ResolveDayInput) timesheet.DayStatus {
	status := timesheet.DayStatus{
		PersonID: in.PersonID,
		Date:     in.Date,
	}

	for _, rule := range dayRules {
		if rule.match(in) {
			status.Kind = rule.kind
			break
		}
	}

	// The holiday name is kept even when an override demoted the day, so
	// that restoring the holiday is a pure record deletion.
	if in.IsHoliday {
		name := in.HolidayName
		status.HolidayName = &name
	}

	switch status.Kind {
	case timesheet.StatusLeave:
		leaveType := in.LeaveType
		status.LeaveType = &leaveType
		return status
	case timesheet.StatusHoliday, timesheet.StatusWeeklyRest:
		return status
	}

	// Normal and excused-absence days still carry attendance arithmetic.
	checkIn, checkOut := selectEvents(in.Events)
	status.CheckIn = checkIn
	status.CheckOut = checkOut

	window, windowOK := effectiveWindow(in.Shift)
	breakMinutes := 0
	if in.Shift != nil {
		breakMinutes = in.Shift.BreakMinutes
	}

	absent := checkIn == nil && checkOut == nil
	inProgress := absent && in.Date == in.Today

	if windowOK {
		status.ExpectedMinutes = ExpectedMinutes(window, breakMinutes)
	} else if !inProgress {
		// Today's empty day is left unflagged; the shift may simply not
		// have started yet.
		status.Anomalies = append(status.Anomalies, timesheet.AnomalyUndefinedShift)
	}

	switch {
	case checkIn != nil && checkOut != nil:
		worked := WorkedMinutes(*checkIn, *checkOut, breakMinutes)
		status.WorkedMinutes = &worked
	case checkIn != nil && checkOut == nil:
		if in.Date != in.Today {
			status.Anomalies = append(status.Anomalies, timesheet.AnomalyMissingCheckout)
		}
	case absent && !inProgress && in.Date.Before(in.Today) && windowOK:
		status.Anomalies = append(status.Anomalies, timesheet.AnomalyUnexplainedAbsence)
	}

	return status
}

// selectEvents picks the earliest check-in and the latest check-out of the
// day. Other events of the same kind are ignored outright.
func selectEvents(events []attendance.Event) (checkIn, checkOut *time.Time) {
	for _, e := range events {
		ts := e.Timestamp
		switch e.Kind {
		case attendance.EventKindCheckIn:
			if checkIn == nil || ts.Before(*checkIn) {
				checkIn = &ts
			}
		case attendance.EventKindCheckOut:
			if checkOut == nil || ts.After(*checkOut) {
				checkOut = &ts
			}
		}
	}
	return checkIn, checkOut
}

func effectiveWindow(shift *schedule.ShiftDefinition) (ShiftWindow, bool) {
	if shift == nil {
		return ShiftWindow{}, false
	}
	window, err := ParseShiftWindow(shift.Window)
	if err != nil {
		return ShiftWindow{}, false
	}
	return window, true
}
