package timesheet

import (
	"github.com/gmt-app/puantaj-backend-go/internal/pkg/validator"
)

// ========================================
// TIMESHEET DTOs
// ========================================

type MonthlyTimesheetRequest struct {
	PersonID string `json:"person_id,omitempty"` // empty means all active persons
	Year     int    `json:"year"`
	Month    int    `json:"month"`
}

func (r *MonthlyTimesheetRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type WeeklyTimesheetRequest struct {
	PersonID  string `json:"person_id,omitempty"`
	WeekStart string `json:"week_start"` // YYYY-MM-DD, any day of the week
}

func (r *WeeklyTimesheetRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.WeekStart); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "week_start",
			Message: "week_start must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DailyDurationsRequest struct {
	Date string `json:"date"` // YYYY-MM-DD
}

func (r *DailyDurationsRequest) Validate() error {
	var errs validator.ValidationErrors

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

type AnomalyReportRequest struct {
	From string `json:"from"` // YYYY-MM-DD
	To   string `json:"to"`   // YYYY-MM-DD
}

func (r *AnomalyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	from, fromOK := validator.IsValidDate(r.From)
	if !fromOK {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from must be in YYYY-MM-DD format",
		})
	}

	to, toOK := validator.IsValidDate(r.To)
	if !toOK {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must be in YYYY-MM-DD format",
		})
	}

	if fromOK && toOK && to.Before(from) {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must not be before from",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ========================================
// RESPONSES
// ========================================

type DayStatusResponse struct {
	Date            string   `json:"date"`
	Kind            string   `json:"kind"`
	LeaveType       *string  `json:"leave_type,omitempty"`
	HolidayName     *string  `json:"holiday_name,omitempty"`
	CheckIn         *string  `json:"check_in,omitempty"`  // HH:MM
	CheckOut        *string  `json:"check_out,omitempty"` // HH:MM
	WorkedMinutes   *int     `json:"worked_minutes,omitempty"`
	ExpectedMinutes int      `json:"expected_minutes"`
	Classification  *string  `json:"classification,omitempty"`
	Anomalies       []string `json:"anomalies,omitempty"`
}

type PeriodSummaryResponse struct {
	PeriodStart          string `json:"period_start"`
	PeriodEnd            string `json:"period_end"`
	TotalWorkedMinutes   int    `json:"total_worked_minutes"`
	TotalExpectedMinutes int    `json:"total_expected_minutes"`
	OvertimeMinutes      int    `json:"overtime_minutes"`
	ShortfallMinutes     int    `json:"shortfall_minutes"`
	DaysPresent          int    `json:"days_present"`
}

type AnomalyResponse struct {
	Kind        string  `json:"kind"`
	PersonID    string  `json:"person_id"`
	PersonName  string  `json:"person_name,omitempty"`
	Date        string  `json:"date"`
	CheckInTime *string `json:"check_in_time,omitempty"` // HH:MM
	Reason      string  `json:"reason,omitempty"`
}

type PersonTimesheetResponse struct {
	PersonID       string                `json:"person_id"`
	PersonName     string                `json:"person_name"`
	RegistrationNo string                `json:"registration_no,omitempty"`
	Days           []DayStatusResponse   `json:"days"`
	Summary        PeriodSummaryResponse `json:"summary"`
	Anomalies      []AnomalyResponse     `json:"anomalies,omitempty"`
}

type TimesheetReportResponse struct {
	PeriodStart string                    `json:"period_start"`
	PeriodEnd   string                    `json:"period_end"`
	GeneratedAt string                    `json:"generated_at"`
	Persons     []PersonTimesheetResponse `json:"persons"`
}

type DailyDurationRow struct {
	PersonID       string  `json:"person_id"`
	PersonName     string  `json:"person_name"`
	RegistrationNo string  `json:"registration_no,omitempty"`
	FirstCheckIn   *string `json:"first_check_in,omitempty"` // HH:MM
	LastCheckOut   *string `json:"last_check_out,omitempty"` // HH:MM
	WorkedMinutes  *int    `json:"worked_minutes,omitempty"`
	Status         string  `json:"status"`
}

type DailyDurationsResponse struct {
	Date string             `json:"date"`
	Rows []DailyDurationRow `json:"rows"`
}

type AnomalyReportResponse struct {
	From      string            `json:"from"`
	To        string            `json:"to"`
	Anomalies []AnomalyResponse `json:"anomalies"`
}
