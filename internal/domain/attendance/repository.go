package attendance

import (
	"context"

	"github.com/gmt-app/puantaj-backend-go/internal/pkg/dateutil"
)

// EventRepository defines data access for raw check-in/out events.
// The engine consumes events read-only; Create exists for the ingestion API.
type EventRepository interface {
	Create(ctx context.Context, event Event) (Event, error)

	// ListByRange retrieves all events with a timestamp inside
	// [from 00:00, to 24:00), optionally filtered to one person.
	ListByRange(ctx context.Context, from, to dateutil.Date, personID string) ([]Event, error)
}

type HolidayOverrideRepository interface {
	Create(ctx context.Context, override HolidayOverride) (HolidayOverride, error)
	Delete(ctx context.Context, id string) error

	// ListByRange retrieves overrides dated inside [from, to].
	ListByRange(ctx context.Context, from, to dateutil.Date) ([]HolidayOverride, error)
}
