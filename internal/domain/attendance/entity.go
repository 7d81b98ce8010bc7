package attendance

import (
	"time"

	"github.com/gmt-app/puantaj-backend-go/internal/pkg/dateutil"
)

type EventKind string

const (
	EventKindCheckIn  EventKind = "check_in"
	EventKindCheckOut EventKind = "check_out"
)

var EventKindValues = []string{
	string(EventKindCheckIn),
	string(EventKindCheckOut),
}

// Event is a single raw check-in or check-out record. Events are immutable
// once recorded; the timesheet engine only ever reads them.
type Event struct {
	ID             string
	PersonID       string
	Timestamp      time.Time
	Kind           EventKind
	Manual         bool
	DistanceMeters *int
	ExcuseNote     *string
	CreatedAt      time.Time

	// DTO
	PersonName *string
}

// Date returns the calendar day the event belongs to, in the event's
// recorded location.
func (e Event) Date() dateutil.Date {
	return dateutil.DateOf(e.Timestamp)
}

// HolidayOverride cancels the public-holiday status of one person-day.
// Deleting the record restores the holiday.
type HolidayOverride struct {
	ID        string
	PersonID  string
	Date      dateutil.Date
	CreatedAt time.Time
}
