package schedule

import (
	"context"
	"fmt"

	"github.com/gmt-app/puantaj-backend-go/internal/domain/person"
	"github.com/gmt-app/puantaj-backend-go/internal/domain/schedule"
	"github.com/gmt-app/puantaj-backend-go/internal/pkg/dateutil"
)

type ScheduleServiceImpl struct {
	schedule.ShiftRepository
	schedule.PlanRepository
	person.PersonRepository
}

// SetShift implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) SetShift(ctx context.Context, req schedule.SetShiftRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if _, err := s.PersonRepository.GetByID(ctx, req.PersonID); err != nil {
		return err
	}

	return s.ShiftRepository.Upsert(ctx, schedule.ShiftDefinition{
		PersonID:     req.PersonID,
		Window:       req.Window,
		BreakMinutes: req.BreakMinutes,
	})
}

// UpsertPlanEntry implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) UpsertPlanEntry(ctx context.Context, req schedule.UpsertPlanEntryRequest) (schedule.PlanEntry, error) {
	if err := req.Validate(); err != nil {
		return schedule.PlanEntry{}, err
	}

	if _, err := s.PersonRepository.GetByID(ctx, req.PersonID); err != nil {
		return schedule.PlanEntry{}, err
	}

	date, err := dateutil.ParseDate(req.Date)
	if err != nil {
		return schedule.PlanEntry{}, fmt.Errorf("failed to parse date: %w", err)
	}

	entry := schedule.PlanEntry{
		PersonID:     req.PersonID,
		Date:         date,
		Window:       req.Window,
		BreakMinutes: req.BreakMinutes,
		IsWeeklyRest: req.IsWeeklyRest,
	}

	// A rest day never carries a working window.
	if entry.IsWeeklyRest {
		entry.Window = ""
		entry.BreakMinutes = 0
	}

	return s.PlanRepository.Upsert(ctx, entry)
}

func NewScheduleService(
	shiftRepo schedule.ShiftRepository,
	planRepo schedule.PlanRepository,
	personRepo person.PersonRepository,
) schedule.ScheduleService {
	return &ScheduleServiceImpl{
		ShiftRepository:  shiftRepo,
		PlanRepository:   planRepo,
		PersonRepository: personRepo,
	}
}
