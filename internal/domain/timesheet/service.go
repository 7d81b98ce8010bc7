package timesheet

import (
	"context"

	"github.com/gmt-app/puantaj-backend-go/internal/pkg/dateutil"
)

// TimesheetService is the query surface over the reconciliation engine.
// Every call recomputes from source records; nothing here mutates them.
type TimesheetService interface {
	MonthlyTimesheet(ctx context.Context, req MonthlyTimesheetRequest) (TimesheetReportResponse, error)
	WeeklyTimesheet(ctx context.Context, req WeeklyTimesheetRequest) (TimesheetReportResponse, error)
	DailyDurations(ctx context.Context, req DailyDurationsRequest) (DailyDurationsResponse, error)
	AnomalyReport(ctx context.Context, req AnomalyReportRequest) (AnomalyReportResponse, error)

	// SnapshotDay resolves every active person's status for one date and
	// persists it to the audit table. Used by the nightly job.
	SnapshotDay(ctx context.Context, date dateutil.Date) error
}
