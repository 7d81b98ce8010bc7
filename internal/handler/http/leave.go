package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gmt-app/puantaj-backend-go/internal/domain/leave"
	"github.com/gmt-app/puantaj-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	CreatePeriod(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

// CreatePeriod implements LeaveHandler.
func (h *LeaveHandlerImpl) CreatePeriod(w http.ResponseWriter, r *http.Request) {
	var req leave.CreatePeriodRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreatePeriod decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	period, err := h.leaveService.CreatePeriod(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave period recorded", period)
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}
