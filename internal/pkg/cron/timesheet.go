package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gmt-app/puantaj-backend-go/internal/domain/timesheet"
	"github.com/gmt-app/puantaj-backend-go/internal/pkg/dateutil"
)

// TimesheetJobs persists the nightly audit snapshot. The snapshot is a
// write-only copy of the resolved day statuses; queries keep recomputing
// from source records regardless of what the snapshot says.
type TimesheetJobs struct {
	timesheetSvc timesheet.TimesheetService
	now          func() time.Time
}

func NewTimesheetJobs(timesheetSvc timesheet.TimesheetService) *TimesheetJobs {
	return &TimesheetJobs{timesheetSvc: timesheetSvc, now: time.Now}
}

func (j *TimesheetJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("audit_snapshot_yesterday", 1*time.Hour, j.SnapshotYesterday)
}

func (j *TimesheetJobs) SnapshotYesterday(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	now := j.now().UTC()
	if now.Hour() != 0 {
		return nil
	}

	yesterday := dateutil.DateOf(now).AddDays(-1)
	slog.Info("Cron: Starting audit snapshot job", "date", yesterday.String())

	if err := j.timesheetSvc.SnapshotDay(ctx, yesterday); err != nil {
		return fmt.Errorf("failed to snapshot %s: %w", yesterday, err)
	}

	slog.Info("Cron: Audit snapshot persisted", "date", yesterday.String())
	return nil
}
