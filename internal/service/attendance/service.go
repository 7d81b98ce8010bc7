package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/gmt-app/puantaj-backend-go/internal/domain/attendance"
	"github.com/gmt-app/puantaj-backend-go/internal/domain/person"
	"github.com/gmt-app/puantaj-backend-go/internal/pkg/dateutil"
)

type AttendanceServiceImpl struct {
	attendance.EventRepository
	attendance.HolidayOverrideRepository
	person.PersonRepository
}

// RecordEvent implements attendance.AttendanceService. Events are append
// only; corrections happen by recording another event, never by editing.
func (s *AttendanceServiceImpl) RecordEvent(ctx context.Context, req attendance.CreateEventRequest) (attendance.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.EventResponse{}, err
	}

	if _, err := s.PersonRepository.GetByID(ctx, req.PersonID); err != nil {
		return attendance.EventResponse{}, err
	}

	ts, err := time.Parse(time.RFC3339, req.Timestamp)
	if err != nil {
		return attendance.EventResponse{}, fmt.Errorf("failed to parse timestamp: %w", err)
	}

	event, err := s.EventRepository.Create(ctx, attendance.Event{
		PersonID:       req.PersonID,
		Timestamp:      ts,
		Kind:           attendance.EventKind(req.Kind),
		Manual:         req.Manual,
		DistanceMeters: req.DistanceMeters,
		ExcuseNote:     req.ExcuseNote,
	})
	if err != nil {
		return attendance.EventResponse{}, err
	}

	return attendance.EventResponse{
		ID:             event.ID,
		PersonID:       event.PersonID,
		PersonName:     event.PersonName,
		Timestamp:      event.Timestamp.Format(time.RFC3339),
		Date:           event.Date().String(),
		Kind:           string(event.Kind),
		Manual:         event.Manual,
		DistanceMeters: event.DistanceMeters,
		ExcuseNote:     event.ExcuseNote,
	}, nil
}

// OverrideHoliday implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) OverrideHoliday(ctx context.Context, req attendance.CreateHolidayOverrideRequest) (attendance.HolidayOverride, error) {
	if err := req.Validate(); err != nil {
		return attendance.HolidayOverride{}, err
	}

	if _, err := s.PersonRepository.GetByID(ctx, req.PersonID); err != nil {
		return attendance.HolidayOverride{}, err
	}

	date, err := dateutil.ParseDate(req.Date)
	if err != nil {
		return attendance.HolidayOverride{}, fmt.Errorf("failed to parse date: %w", err)
	}

	return s.HolidayOverrideRepository.Create(ctx, attendance.HolidayOverride{
		PersonID: req.PersonID,
		Date:     date,
	})
}

// RemoveHolidayOverride implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) RemoveHolidayOverride(ctx context.Context, id string) error {
	return s.HolidayOverrideRepository.Delete(ctx, id)
}

func NewAttendanceService(
	eventRepo attendance.EventRepository,
	overrideRepo attendance.HolidayOverrideRepository,
	personRepo person.PersonRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		EventRepository:           eventRepo,
		HolidayOverrideRepository: overrideRepo,
		PersonRepository:          personRepo,
	}
}
