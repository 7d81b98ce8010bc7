package schedule

import (
	"github.com/gmt-app/puantaj-backend-go/internal/pkg/validator"
)

type UpsertPlanEntryRequest struct {
	PersonID     string `json:"person_id"`
	Date         string `json:"date"` // YYYY-MM-DD
	Window       string `json:"window,omitempty"`
	BreakMinutes int    `json:"break_minutes"`
	IsWeeklyRest bool   `json:"is_weekly_rest"`
}

func (r *UpsertPlanEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PersonID) {
		errs = append(errs, validator.ValidationError{
			Field:   "person_id",
			Message: "person_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	// Rest days carry no window; working overrides must have a valid one.
	if !r.IsWeeklyRest && r.Window != "" && !validator.IsValidShiftWindow(r.Window) {
		errs = append(errs, validator.ValidationError{
			Field:   "window",
			Message: "window must be in HH:MM-HH:MM format",
		})
	}

	if r.BreakMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_minutes",
			Message: "break_minutes must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SetShiftRequest struct {
	PersonID     string `json:"person_id"`
	Window       string `json:"window"`
	BreakMinutes int    `json:"break_minutes"`
}

func (r *SetShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PersonID) {
		errs = append(errs, validator.ValidationError{
			Field:   "person_id",
			Message: "person_id is required",
		})
	}

	if !validator.IsValidShiftWindow(r.Window) {
		errs = append(errs, validator.ValidationError{
			Field:   "window",
			Message: "window must be in HH:MM-HH:MM format",
		})
	}

	if r.BreakMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_minutes",
			Message: "break_minutes must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
