package attendance

import (
	"github.com/gmt-app/puantaj-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type CreateEventRequest struct {
	PersonID       string  `json:"person_id"`
	Timestamp      string  `json:"timestamp"` // RFC3339
	Kind           string  `json:"kind"`
	Manual         bool    `json:"manual"`
	DistanceMeters *int    `json:"distance_meters,omitempty"`
	ExcuseNote     *string `json:"excuse_note,omitempty"`
}

func (r *CreateEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PersonID) {
		errs = append(errs, validator.ValidationError{
			Field:   "person_id",
			Message: "person_id is required",
		})
	}

	if _, ok := validator.IsValidDateTime(r.Timestamp); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "timestamp",
			Message: "timestamp must be a valid RFC3339 timestamp",
		})
	}

	if !validator.IsInSlice(r.Kind, EventKindValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be one of: check_in, check_out",
		})
	}

	if r.DistanceMeters != nil && *r.DistanceMeters < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "distance_meters",
			Message: "distance_meters must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreateHolidayOverrideRequest struct {
	PersonID string `json:"person_id"`
	Date     string `json:"date"` // YYYY-MM-DD
}

func (r *CreateHolidayOverrideRequest) Validate() error {
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

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EventResponse struct {
	ID             string  `json:"id"`
	PersonID       string  `json:"person_id"`
	PersonName     *string `json:"person_name,omitempty"`
	Timestamp      string  `json:"timestamp"`
	Date           string  `json:"date"`
	Kind           string  `json:"kind"`
	Manual         bool    `json:"manual"`
	DistanceMeters *int    `json:"distance_meters,omitempty"`
	ExcuseNote     *string `json:"excuse_note,omitempty"`
}
