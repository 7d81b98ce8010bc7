package attendance

import "errors"

// Attendance domain errors
var (
	ErrEventNotFound    = errors.New("attendance event not found")
	ErrOverrideNotFound = errors.New("holiday override not found")
	ErrOverrideExists   = errors.New("holiday override already exists for this day")
)
