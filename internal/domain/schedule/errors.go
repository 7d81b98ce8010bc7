package schedule

import "errors"

// Schedule domain errors
var (
	ErrShiftNotFound     = errors.New("no shift definition for this person")
	ErrPlanEntryNotFound = errors.New("shift plan entry not found")
)
