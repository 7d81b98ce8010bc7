package schedule

import "context"

type ScheduleService interface {
	SetShift(ctx context.Context, req SetShiftRequest) error
	UpsertPlanEntry(ctx context.Context, req UpsertPlanEntryRequest) (PlanEntry, error)
}
