package timesheet

import (
	"time"

	"github.com/gmt-app/puantaj-backend-go/internal/pkg/dateutil"
)

// DayKey identifies one person-day. It is a comparable struct rather than a
// concatenated string so map lookups cannot collide on separators.
type DayKey struct {
	PersonID string
	Date     dateutil.Date
}

type StatusKind string

const (
	StatusHoliday        StatusKind = "holiday"
	StatusWeeklyRest     StatusKind = "weekly_rest"
	StatusLeave          StatusKind = "leave"
	StatusExcusedAbsence StatusKind = "excused_absence"
	StatusNormal         StatusKind = "normal"
)

// OffDuty reports whether the day contributes nothing to either side of the
// period totals.
func (k StatusKind) OffDuty() bool {
	return k == StatusHoliday || k == StatusWeeklyRest || k == StatusLeave
}

type AnomalyKind string

const (
	AnomalyMissingCheckout    AnomalyKind = "missing_checkout"
	AnomalyUnexplainedAbsence AnomalyKind = "unexplained_absence"
	AnomalyUndefinedShift     AnomalyKind = "undefined_shift"
)

// AbsenceReason distinguishes why an unexplained absence was raised.
type AbsenceReason string

const (
	// AbsenceNoRecord: the day has a parseable shift but no attendance and
	// no holiday/rest/leave classification.
	AbsenceNoRecord AbsenceReason = "no_attendance_recorded"
	// AbsenceUndefinedShift: the shift definition itself is missing or
	// unparseable for this person-day.
	AbsenceUndefinedShift AbsenceReason = "shift_undefined"
)

type Anomaly struct {
	Kind        AnomalyKind
	PersonID    string
	Date        dateutil.Date
	CheckInTime *time.Time    // set for missing_checkout
	Reason      AbsenceReason // set for unexplained_absence
}

// DayStatus is the authoritative reconciliation of one person-day. It is
// recomputed from source records on every query; the nightly audit job
// persists a copy but that copy is never read back as truth.
type DayStatus struct {
	PersonID        string
	Date            dateutil.Date
	Kind            StatusKind
	LeaveType       *string // set when Kind == leave
	HolidayName     *string // set when the date falls in a holiday span, even if overridden
	CheckIn         *time.Time
	CheckOut        *time.Time
	WorkedMinutes   *int // nil when undefined (no attendance, or missing checkout)
	ExpectedMinutes int
	Anomalies       []AnomalyKind
}

func (s DayStatus) Key() DayKey {
	return DayKey{PersonID: s.PersonID, Date: s.Date}
}

func (s DayStatus) HasAnomaly(kind AnomalyKind) bool {
	for _, a := range s.Anomalies {
		if a == kind {
			return true
		}
	}
	return false
}

// PeriodSummary is the rollup of one person's DayStatus sequence over a
// contiguous week or month. Derived, never mutated in place.
type PeriodSummary struct {
	PersonID             string
	PeriodStart          dateutil.Date
	PeriodEnd            dateutil.Date
	TotalWorkedMinutes   int
	TotalExpectedMinutes int
	OvertimeMinutes      int
	ShortfallMinutes     int
	DaysPresent          int
}

// DayClassification is the display-level verdict for a single worked day,
// using the tolerance band. Period totals ignore it and use exact
// differences.
type DayClassification string

const (
	ClassOnTarget DayClassification = "on_target"
	ClassShort    DayClassification = "short"
	ClassOver     DayClassification = "over"
)
