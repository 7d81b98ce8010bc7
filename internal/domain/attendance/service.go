package attendance

import "context"

type AttendanceService interface {
	RecordEvent(ctx context.Context, req CreateEventRequest) (EventResponse, error)

	// OverrideHoliday marks one holiday person-day as worked anyway.
	OverrideHoliday(ctx context.Context, req CreateHolidayOverrideRequest) (HolidayOverride, error)
	RemoveHolidayOverride(ctx context.Context, id string) error
}
