package http

import (
	"net/http"
	"strconv"

	"github.com/gmt-app/puantaj-backend-go/internal/domain/calendar"
	"github.com/gmt-app/puantaj-backend-go/internal/handler/http/response"
)

type CalendarHandler interface {
	Upcoming(w http.ResponseWriter, r *http.Request)
}

type CalendarHandlerImpl struct {
	calendarService calendar.CalendarService
}

// Upcoming implements CalendarHandler.
func (h *CalendarHandlerImpl) Upcoming(w http.ResponseWriter, r *http.Request) {
	horizon := 0
	if raw := r.URL.Query().Get("horizon_days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "horizon_days must be a number", nil)
			return
		}
		horizon = parsed
	}

	resp, err := h.calendarService.UpcomingEvents(r.Context(), calendar.UpcomingEventsRequest{
		HorizonDays: horizon,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

func NewCalendarHandler(calendarService calendar.CalendarService) CalendarHandler {
	return &CalendarHandlerImpl{calendarService: calendarService}
}
