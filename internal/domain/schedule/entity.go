package schedule

import (
	"time"

	"github.com/gmt-app/puantaj-backend-go/internal/pkg/dateutil"
)

// ShiftDefinition is a person's working window for one day, either the
// per-person default or a per-date override from the shift plan.
// Window is "HH:MM-HH:MM"; overnight windows are not supported and are
// treated as unparseable by the timesheet arithmetic.
type ShiftDefinition struct {
	PersonID     string
	Window       string
	BreakMinutes int
}

// PlanEntry is one day of the weekly shift plan. IsWeeklyRest marks the
// designated rest day (hafta tatili); the day resolver ranks it right under
// public holidays. A non-rest entry may override the person's default window.
type PlanEntry struct {
	ID           string
	PersonID     string
	Date         dateutil.Date
	Window       string
	BreakMinutes int
	IsWeeklyRest bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
