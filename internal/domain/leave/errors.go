package leave

import "errors"

// Leave domain errors
var (
	ErrPeriodNotFound         = errors.New("leave period not found")
	ErrPeriodAlreadyProcessed = errors.New("leave period has already been approved or rejected")
	ErrInvalidPeriodRange     = errors.New("leave period end date is before its start date")
)
