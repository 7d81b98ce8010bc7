package leave

import (
	"github.com/gmt-app/puantaj-backend-go/internal/pkg/validator"
)

type CreatePeriodRequest struct {
	PersonID  string  `json:"person_id"`
	StartDate string  `json:"start_date"` // YYYY-MM-DD
	EndDate   string  `json:"end_date"`   // YYYY-MM-DD
	Type      string  `json:"type"`
	Status    string  `json:"status"`
	Note      *string `json:"note,omitempty"`
}

func (r *CreatePeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PersonID) {
		errs = append(errs, validator.ValidationError{
			Field:   "person_id",
			Message: "person_id is required",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if !validator.IsInSlice(r.Type, TypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "unknown leave type",
		})
	}

	if r.Status != "" && !validator.IsInSlice(r.Status, PeriodStatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: pending, approved, rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PeriodResponse struct {
	ID         string  `json:"id"`
	PersonID   string  `json:"person_id"`
	PersonName *string `json:"person_name,omitempty"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Type       string  `json:"type"`
	Status     string  `json:"status"`
	Note       *string `json:"note,omitempty"`
}
