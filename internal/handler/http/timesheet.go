package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gmt-app/puantaj-backend-go/internal/domain/timesheet"
	"github.com/gmt-app/puantaj-backend-go/internal/handler/http/response"
	servicetimesheet "github.com/gmt-app/puantaj-backend-go/internal/service/timesheet"
)

type TimesheetHandler interface {
	Monthly(w http.ResponseWriter, r *http.Request)
	Weekly(w http.ResponseWriter, r *http.Request)
	Daily(w http.ResponseWriter, r *http.Request)
	Anomalies(w http.ResponseWriter, r *http.Request)
	SuggestCheckOut(w http.ResponseWriter, r *http.Request)
}

type TimesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

// Monthly implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		response.BadRequest(w, "year must be a number", nil)
		return
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		response.BadRequest(w, "month must be a number", nil)
		return
	}

	report, err := h.timesheetService.MonthlyTimesheet(r.Context(), timesheet.MonthlyTimesheetRequest{
		PersonID: r.URL.Query().Get("person_id"),
		Year:     year,
		Month:    month,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

// Weekly implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Weekly(w http.ResponseWriter, r *http.Request) {
	report, err := h.timesheetService.WeeklyTimesheet(r.Context(), timesheet.WeeklyTimesheetRequest{
		PersonID:  r.URL.Query().Get("person_id"),
		WeekStart: r.URL.Query().Get("week_start"),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

// Daily implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Daily(w http.ResponseWriter, r *http.Request) {
	resp, err := h.timesheetService.DailyDurations(r.Context(), timesheet.DailyDurationsRequest{
		Date: r.URL.Query().Get("date"),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Anomalies implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Anomalies(w http.ResponseWriter, r *http.Request) {
	resp, err := h.timesheetService.AnomalyReport(r.Context(), timesheet.AnomalyReportRequest{
		From: r.URL.Query().Get("from"),
		To:   r.URL.Query().Get("to"),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// SuggestCheckOut implements TimesheetHandler. The suggestion prefills the
// manual entry form; it never feeds the resolver.
func (h *TimesheetHandlerImpl) SuggestCheckOut(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("check_in")
	if raw == "" {
		response.BadRequest(w, "check_in is required", nil)
		return
	}

	checkIn, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		// Bare clock values are anchored to today.
		clock, clockErr := time.Parse("15:04", raw)
		if clockErr != nil {
			response.BadRequest(w, "check_in must be RFC3339 or HH:MM", nil)
			return
		}
		now := time.Now()
		checkIn = time.Date(now.Year(), now.Month(), now.Day(), clock.Hour(), clock.Minute(), 0, 0, time.Local)
	}

	suggested := servicetimesheet.SuggestCheckOut(checkIn)
	response.Success(w, map[string]string{
		"check_in":            checkIn.Format(time.RFC3339),
		"suggested_check_out": suggested.Format(time.RFC3339),
	})
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService) TimesheetHandler {
	return &TimesheetHandlerImpl{timesheetService: timesheetService}
}
