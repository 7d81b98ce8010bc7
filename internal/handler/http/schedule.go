package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gmt-app/puantaj-backend-go/internal/domain/schedule"
	"github.com/gmt-app/puantaj-backend-go/internal/handler/http/response"
)

type ScheduleHandler interface {
	SetShift(w http.ResponseWriter, r *http.Request)
	UpsertPlanEntry(w http.ResponseWriter, r *http.Request)
}

type ScheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

// SetShift implements ScheduleHandler.
func (h *ScheduleHandlerImpl) SetShift(w http.ResponseWriter, r *http.Request) {
	var req schedule.SetShiftRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SetShift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.scheduleService.SetShift(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift definition saved", nil)
}

// UpsertPlanEntry implements ScheduleHandler.
func (h *ScheduleHandlerImpl) UpsertPlanEntry(w http.ResponseWriter, r *http.Request) {
	var req schedule.UpsertPlanEntryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpsertPlanEntry decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	entry, err := h.scheduleService.UpsertPlanEntry(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift plan entry saved", entry)
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &ScheduleHandlerImpl{scheduleService: scheduleService}
}
