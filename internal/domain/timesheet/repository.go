package timesheet

import (
	"context"

	"github.com/gmt-app/puantaj-backend-go/internal/pkg/dateutil"
)

// DayStatusRepository persists resolved day statuses for audit. Rows are
// write-only from the engine's point of view: queries always recompute from
// source records.
type DayStatusRepository interface {
	// ReplaceForDate atomically swaps the snapshot rows for a date with the
	// given statuses. A failure leaves the previous snapshot untouched.
	ReplaceForDate(ctx context.Context, date dateutil.Date, statuses []DayStatus) error
}
