package calendar

import (
	"github.com/gmt-app/puantaj-backend-go/internal/pkg/validator"
)

type UpcomingEventsRequest struct {
	HorizonDays int `json:"horizon_days"` // 0 means the default horizon
}

func (r *UpcomingEventsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.HorizonDays < 0 || r.HorizonDays > 365 {
		errs = append(errs, validator.ValidationError{
			Field:   "horizon_days",
			Message: "horizon_days must be between 0 and 365",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type OccurrenceResponse struct {
	Kind          string `json:"kind"`
	Label         string `json:"label"`
	Date          string `json:"date"`
	DaysRemaining int    `json:"days_remaining"`
	PersonID      string `json:"person_id,omitempty"`
}

type UpcomingEventsResponse struct {
	AsOf        string               `json:"as_of"`
	HorizonDays int                  `json:"horizon_days"`
	Events      []OccurrenceResponse `json:"events"`
}
