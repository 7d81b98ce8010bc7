package leave

import "context"

type LeaveService interface {
	CreatePeriod(ctx context.Context, req CreatePeriodRequest) (PeriodResponse, error)
}
