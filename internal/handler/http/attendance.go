package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gmt-app/puantaj-backend-go/internal/domain/attendance"
	"github.com/gmt-app/puantaj-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	RecordEvent(w http.ResponseWriter, r *http.Request)
	OverrideHoliday(w http.ResponseWriter, r *http.Request)
	RemoveHolidayOverride(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

// RecordEvent implements AttendanceHandler.
func (h *AttendanceHandlerImpl) RecordEvent(w http.ResponseWriter, r *http.Request) {
	var req attendance.CreateEventRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("RecordEvent decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	event, err := h.attendanceService.RecordEvent(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance event recorded", event)
}

// OverrideHoliday implements AttendanceHandler.
func (h *AttendanceHandlerImpl) OverrideHoliday(w http.ResponseWriter, r *http.Request) {
	var req attendance.CreateHolidayOverrideRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("OverrideHoliday decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	override, err := h.attendanceService.OverrideHoliday(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday override recorded", override)
}

// RemoveHolidayOverride implements AttendanceHandler.
func (h *AttendanceHandlerImpl) RemoveHolidayOverride(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Override ID is required", nil)
		return
	}

	if err := h.attendanceService.RemoveHolidayOverride(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday override removed", nil)
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}
