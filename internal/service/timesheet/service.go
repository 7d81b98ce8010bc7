package timesheet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gmt-app/puantaj-backend-go/internal/domain/attendance"
	"github.com/gmt-app/puantaj-backend-go/internal/domain/calendar"
	domainleave "github.com/gmt-app/puantaj-backend-go/internal/domain/leave"
	"github.com/gmt-app/puantaj-backend-go/internal/domain/person"
	"github.com/gmt-app/puantaj-backend-go/internal/domain/schedule"
	"github.com/gmt-app/puantaj-backend-go/internal/domain/timesheet"
	"github.com/gmt-app/puantaj-backend-go/internal/pkg/dateutil"
	svccalendar "github.com/gmt-app/puantaj-backend-go/internal/service/calendar"
	serviceleave "github.com/gmt-app/puantaj-backend-go/internal/service/leave"
)

type TimesheetServiceImpl struct {
	person.PersonRepository
	attendance.EventRepository
	attendance.HolidayOverrideRepository
	domainleave.PeriodRepository
	schedule.ShiftRepository
	schedule.PlanRepository
	timesheet.DayStatusRepository

	holidays         []calendar.Holiday
	toleranceMinutes int
	fallbackShift    schedule.ShiftDefinition
	now              func() time.Time
}

func NewTimesheetService(
	personRepo person.PersonRepository,
	eventRepo attendance.EventRepository,
	overrideRepo attendance.HolidayOverrideRepository,
	leaveRepo domainleave.PeriodRepository,
	shiftRepo schedule.ShiftRepository,
	planRepo schedule.PlanRepository,
	dayStatusRepo timesheet.DayStatusRepository,
	toleranceMinutes int,
	fallbackShift schedule.ShiftDefinition,
) timesheet.TimesheetService {
	return &TimesheetServiceImpl{
		PersonRepository:          personRepo,
		EventRepository:           eventRepo,
		HolidayOverrideRepository: overrideRepo,
		PeriodRepository:          leaveRepo,
		ShiftRepository:           shiftRepo,
		PlanRepository:            planRepo,
		DayStatusRepository:       dayStatusRepo,
		holidays:                  calendar.PublicHolidays,
		toleranceMinutes:          toleranceMinutes,
		fallbackShift:             fallbackShift,
		now:                       time.Now,
	}
}

// resolveRange recomputes DayStatus for every requested person over
// [from, to] from a single fetched batch of source records.
func (s *TimesheetServiceImpl) resolveRange(ctx context.Context, from, to dateutil.Date, personID string) ([]person.Person, map[string][]timesheet.DayStatus, error) {
	var persons []person.Person
	if personID != "" {
		p, err := s.PersonRepository.GetByID(ctx, personID)
		if err != nil {
			if errors.Is(err, person.ErrPersonNotFound) {
				return nil, nil, person.ErrPersonNotFound
			}
			return nil, nil, fmt.Errorf("failed to get person: %w", err)
		}
		persons = []person.Person{p}
	} else {
		var err error
		persons, err = s.PersonRepository.ListActive(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to list persons: %w", err)
		}
	}

	events, err := s.EventRepository.ListByRange(ctx, from, to, personID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list attendance events: %w", err)
	}
	eventsByDay := make(map[timesheet.DayKey][]attendance.Event)
	for _, e := range events {
		k := timesheet.DayKey{PersonID: e.PersonID, Date: e.Date()}
		eventsByDay[k] = append(eventsByDay[k], e)
	}

	overrides, err := s.HolidayOverrideRepository.ListByRange(ctx, from, to)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list holiday overrides: %w", err)
	}
	overridden := make(map[timesheet.DayKey]bool, len(overrides))
	for _, o := range overrides {
		overridden[timesheet.DayKey{PersonID: o.PersonID, Date: o.Date}] = true
	}

	periods, err := s.PeriodRepository.ListApprovedOverlapping(ctx, from, to)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list leave periods: %w", err)
	}
	planEntries, err := s.PlanRepository.ListByRange(ctx, from, to, personID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list shift plan entries: %w", err)
	}

	facts := serviceleave.BuildFacts(periods, planEntries, from, to)

	planOverrides := make(map[timesheet.DayKey]schedule.PlanEntry)
	for _, e := range planEntries {
		if !e.IsWeeklyRest && e.Window != "" {
			planOverrides[timesheet.DayKey{PersonID: e.PersonID, Date: e.Date}] = e
		}
	}

	today := dateutil.DateOf(s.now())
	statuses := make(map[string][]timesheet.DayStatus, len(persons))

	for _, p := range persons {
		defaultShift, err := s.ShiftRepository.GetDefault(ctx, p.ID)
		if err != nil {
			if !errors.Is(err, schedule.ErrShiftNotFound) {
				return nil, nil, fmt.Errorf("failed to get shift definition: %w", err)
			}
			defaultShift = s.fallbackShift
			defaultShift.PersonID = p.ID
		}

		days := make([]timesheet.DayStatus, 0, from.DaysUntil(to)+1)
		for _, date := range dateutil.Range(from, to) {
			key := timesheet.DayKey{PersonID: p.ID, Date: date}

			shift := defaultShift
			if entry, ok := planOverrides[key]; ok {
				shift = schedule.ShiftDefinition{
					PersonID:     p.ID,
					Window:       entry.Window,
					BreakMinutes: entry.BreakMinutes,
				}
			}

			holidayName, isHoliday := svccalendar.HolidayOn(s.holidays, date)
			leaveType, hasLeave := facts.LeaveTypeOn(key)

			days = append(days, ResolveDay(ResolveDayInput{
				PersonID:        p.ID,
				Date:            date,
				Today:           today,
				Events:          eventsByDay[key],
				HolidayName:     holidayName,
				IsHoliday:       isHoliday,
				HolidayOverride: overridden[key],
				LeaveType:       leaveType,
				HasLeave:        hasLeave,
				WeeklyRest:      facts.IsWeeklyRest(key),
				Shift:           &shift,
			}))
		}
		statuses[p.ID] = days
	}

	return persons, statuses, nil
}

func (s *TimesheetServiceImpl) buildReport(ctx context.Context, from, to dateutil.Date, personID string) (timesheet.TimesheetReportResponse, error) {
	persons, statuses, err := s.resolveRange(ctx, from, to, personID)
	if err != nil {
		return timesheet.TimesheetReportResponse{}, err
	}

	report := timesheet.TimesheetReportResponse{
		PeriodStart: from.String(),
		PeriodEnd:   to.String(),
		GeneratedAt: s.now().Format(time.RFC3339),
		Persons:     make([]timesheet.PersonTimesheetResponse, 0, len(persons)),
	}

	for _, p := range persons {
		days := statuses[p.ID]
		summary := AggregatePeriod(days)
		anomalies := DetectAnomalies(days)

		resp := timesheet.PersonTimesheetResponse{
			PersonID:       p.ID,
			PersonName:     p.FullName(),
			RegistrationNo: p.RegistrationNo,
			Days:           make([]timesheet.DayStatusResponse, 0, len(days)),
			Summary:        toSummaryResponse(summary),
		}
		for _, day := range days {
			resp.Days = append(resp.Days, s.toDayResponse(day))
		}
		for _, a := range anomalies {
			resp.Anomalies = append(resp.Anomalies, toAnomalyResponse(a, p.FullName()))
		}
		report.Persons = append(report.Persons, resp)
	}

	return report, nil
}

// MonthlyTimesheet implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) MonthlyTimesheet(ctx context.Context, req timesheet.MonthlyTimesheetRequest) (timesheet.TimesheetReportResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.TimesheetReportResponse{}, err
	}

	from, to := dateutil.MonthBounds(req.Year, time.Month(req.Month))
	return s.buildReport(ctx, from, to, req.PersonID)
}

// WeeklyTimesheet implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) WeeklyTimesheet(ctx context.Context, req timesheet.WeeklyTimesheetRequest) (timesheet.TimesheetReportResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.TimesheetReportResponse{}, err
	}

	anchor, err := dateutil.ParseDate(req.WeekStart)
	if err != nil {
		return timesheet.TimesheetReportResponse{}, timesheet.ErrInvalidPeriod
	}
	from, to := dateutil.WeekBounds(anchor)
	return s.buildReport(ctx, from, to, req.PersonID)
}

// DailyDurations implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) DailyDurations(ctx context.Context, req timesheet.DailyDurationsRequest) (timesheet.DailyDurationsResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.DailyDurationsResponse{}, err
	}

	date, err := dateutil.ParseDate(req.Date)
	if err != nil {
		return timesheet.DailyDurationsResponse{}, timesheet.ErrInvalidPeriod
	}

	persons, statuses, err := s.resolveRange(ctx, date, date, "")
	if err != nil {
		return timesheet.DailyDurationsResponse{}, err
	}

	resp := timesheet.DailyDurationsResponse{
		Date: date.String(),
		Rows: make([]timesheet.DailyDurationRow, 0, len(persons)),
	}
	for _, p := range persons {
		days := statuses[p.ID]
		if len(days) == 0 {
			continue
		}
		day := days[0]

		rowStatus := string(day.Kind)
		if day.HasAnomaly(timesheet.AnomalyMissingCheckout) {
			rowStatus = string(timesheet.AnomalyMissingCheckout)
		}

		resp.Rows = append(resp.Rows, timesheet.DailyDurationRow{
			PersonID:       p.ID,
			PersonName:     p.FullName(),
			RegistrationNo: p.RegistrationNo,
			FirstCheckIn:   fmtClock(day.CheckIn),
			LastCheckOut:   fmtClock(day.CheckOut),
			WorkedMinutes:  day.WorkedMinutes,
			Status:         rowStatus,
		})
	}

	return resp, nil
}

// AnomalyReport implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) AnomalyReport(ctx context.Context, req timesheet.AnomalyReportRequest) (timesheet.AnomalyReportResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.AnomalyReportResponse{}, err
	}

	from, err := dateutil.ParseDate(req.From)
	if err != nil {
		return timesheet.AnomalyReportResponse{}, timesheet.ErrInvalidPeriod
	}
	to, err := dateutil.ParseDate(req.To)
	if err != nil {
		return timesheet.AnomalyReportResponse{}, timesheet.ErrInvalidPeriod
	}

	persons, statuses, err := s.resolveRange(ctx, from, to, "")
	if err != nil {
		return timesheet.AnomalyReportResponse{}, err
	}

	resp := timesheet.AnomalyReportResponse{
		From:      from.String(),
		To:        to.String(),
		Anomalies: make([]timesheet.AnomalyResponse, 0),
	}
	for _, p := range persons {
		for _, a := range DetectAnomalies(statuses[p.ID]) {
			resp.Anomalies = append(resp.Anomalies, toAnomalyResponse(a, p.FullName()))
		}
	}

	return resp, nil
}

// SnapshotDay implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) SnapshotDay(ctx context.Context, date dateutil.Date) error {
	_, statuses, err := s.resolveRange(ctx, date, date, "")
	if err != nil {
		return err
	}

	batch := make([]timesheet.DayStatus, 0, len(statuses))
	for _, days := range statuses {
		batch = append(batch, days...)
	}

	if err := s.DayStatusRepository.ReplaceForDate(ctx, date, batch); err != nil {
		return fmt.Errorf("failed to persist audit snapshot: %w", err)
	}

	return nil
}

// fmtClock safely formats a *time.Time as "HH:MM".
func fmtClock(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format("15:04")
	return &formatted
}

func (s *TimesheetServiceImpl) toDayResponse(day timesheet.DayStatus) timesheet.DayStatusResponse {
	resp := timesheet.DayStatusResponse{
		Date:            day.Date.String(),
		Kind:            string(day.Kind),
		LeaveType:       day.LeaveType,
		HolidayName:     day.HolidayName,
		CheckIn:         fmtClock(day.CheckIn),
		CheckOut:        fmtClock(day.CheckOut),
		WorkedMinutes:   day.WorkedMinutes,
		ExpectedMinutes: day.ExpectedMinutes,
	}

	if day.WorkedMinutes != nil {
		class := string(ClassifyDay(*day.WorkedMinutes, day.ExpectedMinutes, s.toleranceMinutes))
		resp.Classification = &class
	}

	for _, a := range day.Anomalies {
		resp.Anomalies = append(resp.Anomalies, string(a))
	}

	return resp
}

func toSummaryResponse(summary timesheet.PeriodSummary) timesheet.PeriodSummaryResponse {
	return timesheet.PeriodSummaryResponse{
		PeriodStart:          summary.PeriodStart.String(),
		PeriodEnd:            summary.PeriodEnd.String(),
		TotalWorkedMinutes:   summary.TotalWorkedMinutes,
		TotalExpectedMinutes: summary.TotalExpectedMinutes,
		OvertimeMinutes:      summary.OvertimeMinutes,
		ShortfallMinutes:     summary.ShortfallMinutes,
		DaysPresent:          summary.DaysPresent,
	}
}

func toAnomalyResponse(a timesheet.Anomaly, personName string) timesheet.AnomalyResponse {
	return timesheet.AnomalyResponse{
		Kind:        string(a.Kind),
		PersonID:    a.PersonID,
		PersonName:  personName,
		Date:        a.Date.String(),
		CheckInTime: fmtClock(a.CheckInTime),
		Reason:      string(a.Reason),
	}
}
