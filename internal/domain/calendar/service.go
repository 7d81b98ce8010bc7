package calendar

import "context"

type CalendarService interface {
	// UpcomingEvents projects holidays, memorial days and birthdays onto
	// their next occurrence within the horizon, sorted by days remaining.
	UpcomingEvents(ctx context.Context, req UpcomingEventsRequest) (UpcomingEventsResponse, error)
}
