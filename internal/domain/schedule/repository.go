package schedule

import (
	"context"

	"github.com/gmt-app/puantaj-backend-go/internal/pkg/dateutil"
)

type ShiftRepository interface {
	// GetDefault retrieves the person's default shift definition.
	// Returns ErrShiftNotFound when the person has none.
	GetDefault(ctx context.Context, personID string) (ShiftDefinition, error)

	Upsert(ctx context.Context, shift ShiftDefinition) error
}

type PlanRepository interface {
	Upsert(ctx context.Context, entry PlanEntry) (PlanEntry, error)

	// ListByRange retrieves plan entries dated inside [from, to],
	// optionally filtered to one person.
	ListByRange(ctx context.Context, from, to dateutil.Date, personID string) ([]PlanEntry, error)
}
