package leave

import (
	"context"

	"github.com/gmt-app/puantaj-backend-go/internal/pkg/dateutil"
)

type PeriodRepository interface {
	Create(ctx context.Context, period Period) (Period, error)

	// ListApprovedOverlapping retrieves approved periods overlapping
	// [from, to]: EndDate >= from and StartDate <= to.
	ListApprovedOverlapping(ctx context.Context, from, to dateutil.Date) ([]Period, error)
}
