package leave

import (
	"context"
	"fmt"

	"github.com/gmt-app/puantaj-backend-go/internal/domain/leave"
	"github.com/gmt-app/puantaj-backend-go/internal/domain/person"
	"github.com/gmt-app/puantaj-backend-go/internal/pkg/dateutil"
)

type LeaveServiceImpl struct {
	leave.PeriodRepository
	person.PersonRepository
}

// CreatePeriod implements leave.LeaveService. Imported records arrive with
// their final status; manually entered ones default to pending.
func (s *LeaveServiceImpl) CreatePeriod(ctx context.Context, req leave.CreatePeriodRequest) (leave.PeriodResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.PeriodResponse{}, err
	}

	if _, err := s.PersonRepository.GetByID(ctx, req.PersonID); err != nil {
		return leave.PeriodResponse{}, err
	}

	start, err := dateutil.ParseDate(req.StartDate)
	if err != nil {
		return leave.PeriodResponse{}, fmt.Errorf("failed to parse start_date: %w", err)
	}
	end, err := dateutil.ParseDate(req.EndDate)
	if err != nil {
		return leave.PeriodResponse{}, fmt.Errorf("failed to parse end_date: %w", err)
	}

	status := leave.PeriodStatus(req.Status)
	if req.Status == "" {
		status = leave.PeriodStatusPending
	}

	period, err := s.PeriodRepository.Create(ctx, leave.Period{
		PersonID:  req.PersonID,
		StartDate: start,
		EndDate:   end,
		Type:      req.Type,
		Status:    status,
		Note:      req.Note,
	})
	if err != nil {
		return leave.PeriodResponse{}, err
	}

	return leave.PeriodResponse{
		ID:         period.ID,
		PersonID:   period.PersonID,
		PersonName: period.PersonName,
		StartDate:  period.StartDate.String(),
		EndDate:    period.EndDate.String(),
		Type:       period.Type,
		Status:     string(period.Status),
		Note:       period.Note,
	}, nil
}

func NewLeaveService(
	periodRepo leave.PeriodRepository,
	personRepo person.PersonRepository,
) leave.LeaveService {
	return &LeaveServiceImpl{
		PeriodRepository: periodRepo,
		PersonRepository: personRepo,
	}
}
