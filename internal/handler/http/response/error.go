package response

import (
	"errors"
	"net/http"

	"github.com/gmt-app/puantaj-backend-go/internal/domain/access"
	"github.com/gmt-app/puantaj-backend-go/internal/domain/attendance"
	"github.com/gmt-app/puantaj-backend-go/internal/domain/leave"
	"github.com/gmt-app/puantaj-backend-go/internal/domain/person"
	"github.com/gmt-app/puantaj-backend-go/internal/domain/schedule"
	"github.com/gmt-app/puantaj-backend-go/internal/domain/timesheet"
	"github.com/gmt-app/puantaj-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Access errors
	case errors.Is(err, access.ErrInvalidPIN):
		Unauthorized(w, "Invalid access PIN")
	case errors.Is(err, access.ErrInvalidToken):
		Unauthorized(w, "Invalid access token")

	// Person domain errors
	case errors.Is(err, person.ErrPersonNotFound):
		NotFound(w, "Person not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrEventNotFound):
		NotFound(w, "Attendance event not found")
	case errors.Is(err, attendance.ErrOverrideNotFound):
		NotFound(w, "Holiday override not found")
	case errors.Is(err, attendance.ErrOverrideExists):
		Conflict(w, "Holiday override already exists for this day")

	// Leave domain errors
	case errors.Is(err, leave.ErrPeriodNotFound):
		NotFound(w, "Leave period not found")
	case errors.Is(err, leave.ErrPeriodAlreadyProcessed):
		Conflict(w, "Leave period already processed")
	case errors.Is(err, leave.ErrInvalidPeriodRange):
		BadRequest(w, "Leave period end date is before its start date", nil)

	// Schedule domain errors
	case errors.Is(err, schedule.ErrShiftNotFound):
		NotFound(w, "No shift definition for this person")
	case errors.Is(err, schedule.ErrPlanEntryNotFound):
		NotFound(w, "Shift plan entry not found")

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrInvalidPeriod):
		BadRequest(w, "Invalid reporting period", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
