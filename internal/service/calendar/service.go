package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/gmt-app/puantaj-backend-go/internal/domain/calendar"
	"github.com/gmt-app/puantaj-backend-go/internal/domain/person"
	"github.com/gmt-app/puantaj-backend-go/internal/pkg/dateutil"
)

const defaultHorizonDays = 300 // roughly the original's ten-month window

type CalendarServiceImpl struct {
	person.PersonRepository
	holidays  []calendar.Holiday
	memorials []calendar.RecurringEvent
	now       func() time.Time
}

func NewCalendarService(personRepo person.PersonRepository) calendar.CalendarService {
	return &CalendarServiceImpl{
		PersonRepository: personRepo,
		holidays:         calendar.PublicHolidays,
		memorials:        calendar.MemorialDays,
		now:              time.Now,
	}
}

// UpcomingEvents implements calendar.CalendarService.
func (s *CalendarServiceImpl) UpcomingEvents(ctx context.Context, req calendar.UpcomingEventsRequest) (calendar.UpcomingEventsResponse, error) {
	if err := req.Validate(); err != nil {
		return calendar.UpcomingEventsResponse{}, err
	}

	horizon := req.HorizonDays
	if horizon == 0 {
		horizon = defaultHorizonDays
	}
	today := dateutil.DateOf(s.now())

	occs := UpcomingFixed(s.holidays, today, horizon)
	occs = append(occs, UpcomingRecurring(s.memorials, today, horizon)...)

	persons, err := s.PersonRepository.ListActive(ctx)
	if err != nil {
		return calendar.UpcomingEventsResponse{}, fmt.Errorf("failed to list persons for birthday projection: %w", err)
	}
	for _, p := range persons {
		if p.BirthDate == nil {
			continue
		}
		occ, remaining := NextOccurrence(p.BirthDate.Month, p.BirthDate.Day, today)
		if remaining > horizon {
			continue
		}
		occs = append(occs, calendar.Occurrence{
			Kind:          calendar.OccurrenceKindBirthday,
			Label:         p.FullName(),
			Date:          occ,
			DaysRemaining: remaining,
			PersonID:      p.ID,
		})
	}

	SortOccurrences(occs)

	events := make([]calendar.OccurrenceResponse, 0, len(occs))
	for _, o := range occs {
		events = append(events, calendar.OccurrenceResponse{
			Kind:          string(o.Kind),
			Label:         o.Label,
			Date:          o.Date.String(),
			DaysRemaining: o.DaysRemaining,
			PersonID:      o.PersonID,
		})
	}

	return calendar.UpcomingEventsResponse{
		AsOf:        today.String(),
		HorizonDays: horizon,
		Events:      events,
	}, nil
}
