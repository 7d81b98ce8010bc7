package timesheet

import "errors"

// Timesheet domain errors. The engine itself has no fatal error class;
// these cover the query surface around it.
var (
	ErrInvalidPeriod = errors.New("invalid reporting period")
)
