package timesheet

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gmt-app/puantaj-backend-go/internal/domain/attendance"
	"github.com/gmt-app/puantaj-backend-go/internal/domain/calendar"
	"github.com/gmt-app/puantaj-backend-go/internal/domain/leave"
	"github.com/gmt-app/puantaj-backend-go/internal/domain/person"
	"github.com/gmt-app/puantaj-backend-go/internal/domain/schedule"
	"github.com/gmt-app/puantaj-backend-go/internal/domain/timesheet"
	"github.com/gmt-app/puantaj-backend-go/internal/pkg/dateutil"
	"github.com/gmt-app/puantaj-backend-go/internal/pkg/validator"
)

// In-memory repository stubs. They apply the same range filters the
// PostgreSQL implementations apply so the service sees realistic batches.

type stubPersonRepo struct {
	persons []person.Person
}

func (r *stubPersonRepo) GetByID(_ context.Context, id string) (person.Person, error) {
	for _, p := range r.persons {
		if p.ID == id {
			return p, nil
		}
	}
	return person.Person{}, person.ErrPersonNotFound
}

func (r *stubPersonRepo) ListActive(_ context.Context) ([]person.Person, error) {
	active := make([]person.Person, 0, len(r.persons))
	for _, p := range r.persons {
		if p.Active {
			active = append(active, p)
		}
	}
	return active, nil
}

type stubEventRepo struct {
	events []attendance.Event
}

func (r *stubEventRepo) Create(_ context.Context, event attendance.Event) (attendance.Event, error) {
	r.events = append(r.events, event)
	return event, nil
}

func (r *stubEventRepo) ListByRange(_ context.Context, from, to dateutil.Date, personID string) ([]attendance.Event, error) {
	var out []attendance.Event
	for _, e := range r.events {
		d := e.Date()
		if d.Before(from) || to.Before(d) {
			continue
		}
		if personID != "" && e.PersonID != personID {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

type stubOverrideRepo struct {
	overrides []attendance.HolidayOverride
}

func (r *stubOverrideRepo) Create(_ context.Context, o attendance.HolidayOverride) (attendance.HolidayOverride, error) {
	r.overrides = append(r.overrides, o)
	return o, nil
}

func (r *stubOverrideRepo) Delete(_ context.Context, _ string) error { return nil }

func (r *stubOverrideRepo) ListByRange(_ context.Context, from, to dateutil.Date) ([]attendance.HolidayOverride, error) {
	var out []attendance.HolidayOverride
	for _, o := range r.overrides {
		if o.Date.Before(from) || to.Before(o.Date) {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

type stubLeaveRepo struct {
	periods []leave.Period
}

func (r *stubLeaveRepo) Create(_ context.Context, p leave.Period) (leave.Period, error) {
	r.periods = append(r.periods, p)
	return p, nil
}

func (r *stubLeaveRepo) ListApprovedOverlapping(_ context.Context, from, to dateutil.Date) ([]leave.Period, error) {
	var out []leave.Period
	for _, p := range r.periods {
		if p.Status != leave.PeriodStatusApproved {
			continue
		}
		if p.EndDate.Before(from) || to.Before(p.StartDate) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

type stubShiftRepo struct {
	shifts map[string]schedule.ShiftDefinition
}

func (r *stubShiftRepo) GetDefault(_ context.Context, personID string) (schedule.ShiftDefinition, error) {
	s, ok := r.shifts[personID]
	if !ok {
		return schedule.ShiftDefinition{}, schedule.ErrShiftNotFound
	}
	return s, nil
}

func (r *stubShiftRepo) Upsert(_ context.Context, s schedule.ShiftDefinition) error {
	r.shifts[s.PersonID] = s
	return nil
}

type stubPlanRepo struct {
	entries []schedule.PlanEntry
}

func (r *stubPlanRepo) Upsert(_ context.Context, e schedule.PlanEntry) (schedule.PlanEntry, error) {
	r.entries = append(r.entries, e)
	return e, nil
}

func (r *stubPlanRepo) ListByRange(_ context.Context, from, to dateutil.Date, personID string) ([]schedule.PlanEntry, error) {
	var out []schedule.PlanEntry
	for _, e := range r.entries {
		if e.Date.Before(from) || to.Before(e.Date) {
			continue
		}
		if personID != "" && e.PersonID != personID {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

type stubDayStatusRepo struct {
	snapshots map[dateutil.Date][]timesheet.DayStatus
	err       error
}

func (r *stubDayStatusRepo) ReplaceForDate(_ context.Context, date dateutil.Date, statuses []timesheet.DayStatus) error {
	if r.err != nil {
		return r.err
	}
	if r.snapshots == nil {
		r.snapshots = make(map[dateutil.Date][]timesheet.DayStatus)
	}
	r.snapshots[date] = statuses
	return nil
}

// newTestService wires a two-person fixture around the first full week of
// February 2026 (Monday the 2nd through Sunday the 8th), with "today"
// pinned to February 10th.
func newTestService(t *testing.T) (*TimesheetServiceImpl, *stubDayStatusRepo) {
	t.Helper()

	d := func(day int) dateutil.Date { return dateutil.NewDate(2026, time.February, day) }
	at := func(day, hour, minute int) time.Time {
		return time.Date(2026, 2, day, hour, minute, 0, 0, time.UTC)
	}

	persons := &stubPersonRepo{persons: []person.Person{
		{ID: "p1", FirstName: "Ayşe", LastName: "Yılmaz", RegistrationNo: "1001", Active: true},
		{ID: "p2", FirstName: "Mehmet", LastName: "Demir", RegistrationNo: "1002", Active: true},
	}}

	events := &stubEventRepo{events: []attendance.Event{
		{ID: "e1", PersonID: "p1", Kind: attendance.EventKindCheckIn, Timestamp: at(2, 9, 5)},
		{ID: "e2", PersonID: "p1", Kind: attendance.EventKindCheckOut, Timestamp: at(2, 18, 10)},
		// Tuesday: check-in without checkout.
		{ID: "e3", PersonID: "p1", Kind: attendance.EventKindCheckIn, Timestamp: at(3, 8, 55)},
		{ID: "e4", PersonID: "p2", Kind: attendance.EventKindCheckIn, Timestamp: at(2, 10, 0)},
		{ID: "e5", PersonID: "p2", Kind: attendance.EventKindCheckOut, Timestamp: at(2, 16, 0)},
	}}

	leaves := &stubLeaveRepo{periods: []leave.Period{
		// Wednesday: approved annual leave for p1.
		{ID: "l1", PersonID: "p1", StartDate: d(4), EndDate: d(4), Type: leave.TypeAnnual, Status: leave.PeriodStatusApproved},
		// Pending requests stay invisible.
		{ID: "l2", PersonID: "p1", StartDate: d(5), EndDate: d(5), Type: leave.TypeSick, Status: leave.PeriodStatusPending},
	}}

	shifts := &stubShiftRepo{shifts: map[string]schedule.ShiftDefinition{
		"p1": {PersonID: "p1", Window: "09:00-18:00", BreakMinutes: 60},
		// p2 has no default shift and falls back to the configured one.
	}}

	plans := &stubPlanRepo{entries: []schedule.PlanEntry{
		{ID: "pl1", PersonID: "p1", Date: d(7), IsWeeklyRest: true},
		{ID: "pl2", PersonID: "p1", Date: d(8), IsWeeklyRest: true},
		{ID: "pl3", PersonID: "p2", Date: d(8), IsWeeklyRest: true},
	}}

	dayStatuses := &stubDayStatusRepo{}

	svc := &TimesheetServiceImpl{
		PersonRepository:          persons,
		EventRepository:           events,
		HolidayOverrideRepository: &stubOverrideRepo{},
		PeriodRepository:          leaves,
		ShiftRepository:           shifts,
		PlanRepository:            plans,
		DayStatusRepository:       dayStatuses,
		holidays: []calendar.Holiday{
			// Friday the 6th is a one-day public holiday in this fixture.
			{StartDate: "2026-02-06", Name: "Kurtuluş Günü", DurationDays: 1},
		},
		toleranceMinutes: DefaultToleranceMinutes,
		fallbackShift:    schedule.ShiftDefinition{Window: "10:00-16:00", BreakMinutes: 0},
		now: func() time.Time {
			return time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
		},
	}

	return svc, dayStatuses
}

func TestWeeklyTimesheet(t *testing.T) {
	svc, _ := newTestService(t)

	report, err := svc.WeeklyTimesheet(context.Background(), timesheet.WeeklyTimesheetRequest{
		PersonID:  "p1",
		WeekStart: "2026-02-04", // mid-week anchor snaps to Monday
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-02-02", report.PeriodStart)
	assert.Equal(t, "2026-02-08", report.PeriodEnd)
	require.Len(t, report.Persons, 1)

	p1 := report.Persons[0]
	assert.Equal(t, "Ayşe Yılmaz", p1.PersonName)
	require.Len(t, p1.Days, 7)

	byDate := make(map[string]timesheet.DayStatusResponse, len(p1.Days))
	for _, day := range p1.Days {
		byDate[day.Date] = day
	}

	mon := byDate["2026-02-02"]
	assert.Equal(t, "normal", mon.Kind)
	require.NotNil(t, mon.WorkedMinutes)
	assert.Equal(t, 485, *mon.WorkedMinutes)
	assert.Equal(t, 480, mon.ExpectedMinutes)
	require.NotNil(t, mon.Classification)
	assert.Equal(t, "on_target", *mon.Classification)

	tue := byDate["2026-02-03"]
	assert.Nil(t, tue.WorkedMinutes)
	assert.Contains(t, tue.Anomalies, "missing_checkout")

	wed := byDate["2026-02-04"]
	assert.Equal(t, "leave", wed.Kind)
	require.NotNil(t, wed.LeaveType)
	assert.Equal(t, leave.TypeAnnual, *wed.LeaveType)

	thu := byDate["2026-02-05"]
	assert.Equal(t, "normal", thu.Kind, "pending leave does not classify the day")
	assert.Contains(t, thu.Anomalies, "unexplained_absence")

	fri := byDate["2026-02-06"]
	assert.Equal(t, "holiday", fri.Kind)
	require.NotNil(t, fri.HolidayName)
	assert.Equal(t, "Kurtuluş Günü", *fri.HolidayName)

	assert.Equal(t, "weekly_rest", byDate["2026-02-07"].Kind)
	assert.Equal(t, "weekly_rest", byDate["2026-02-08"].Kind)

	// Summary: Mon 485 worked; Tue + Thu add 480 expected each with no
	// worked minutes; Wed, Fri, Sat, Sun are off duty.
	assert.Equal(t, 485, p1.Summary.TotalWorkedMinutes)
	assert.Equal(t, 1440, p1.Summary.TotalExpectedMinutes)
	assert.Equal(t, 955, p1.Summary.ShortfallMinutes)
	assert.Zero(t, p1.Summary.OvertimeMinutes)
	assert.Equal(t, 2, p1.Summary.DaysPresent)

	require.Len(t, p1.Anomalies, 2)
	assert.Equal(t, "missing_checkout", p1.Anomalies[0].Kind)
	assert.Equal(t, "unexplained_absence", p1.Anomalies[1].Kind)
	assert.Equal(t, "no_attendance_recorded", p1.Anomalies[1].Reason)
}

func TestWeeklyTimesheetBadAnchor(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.WeeklyTimesheet(context.Background(), timesheet.WeeklyTimesheetRequest{
		WeekStart: "02.02.2026",
	})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestMonthlyTimesheet(t *testing.T) {
	svc, _ := newTestService(t)

	report, err := svc.MonthlyTimesheet(context.Background(), timesheet.MonthlyTimesheetRequest{
		Year:  2026,
		Month: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-02-01", report.PeriodStart)
	assert.Equal(t, "2026-02-28", report.PeriodEnd)
	require.Len(t, report.Persons, 2, "no filter means all active persons")

	for _, p := range report.Persons {
		assert.Len(t, p.Days, 28)
	}
}

func TestMonthlyTimesheetValidation(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.MonthlyTimesheet(context.Background(), timesheet.MonthlyTimesheetRequest{
		Year:  2026,
		Month: 13,
	})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "month", verrs[0].Field)
}

func TestMonthlyTimesheetUnknownPerson(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.MonthlyTimesheet(context.Background(), timesheet.MonthlyTimesheetRequest{
		PersonID: "ghost",
		Year:     2026,
		Month:    2,
	})
	assert.ErrorIs(t, err, person.ErrPersonNotFound)
}

func TestDailyDurations(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.DailyDurations(context.Background(), timesheet.DailyDurationsRequest{
		Date: "2026-02-02",
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-02-02", resp.Date)
	require.Len(t, resp.Rows, 2)

	rows := make(map[string]timesheet.DailyDurationRow, len(resp.Rows))
	for _, row := range resp.Rows {
		rows[row.PersonID] = row
	}

	p1 := rows["p1"]
	require.NotNil(t, p1.FirstCheckIn)
	assert.Equal(t, "09:05", *p1.FirstCheckIn)
	require.NotNil(t, p1.LastCheckOut)
	assert.Equal(t, "18:10", *p1.LastCheckOut)
	require.NotNil(t, p1.WorkedMinutes)
	assert.Equal(t, 485, *p1.WorkedMinutes)

	// p2 uses the fallback window (10:00-16:00, no break).
	p2 := rows["p2"]
	require.NotNil(t, p2.WorkedMinutes)
	assert.Equal(t, 360, *p2.WorkedMinutes)
}

func TestDailyDurationsMissingCheckoutStatus(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.DailyDurations(context.Background(), timesheet.DailyDurationsRequest{
		Date: "2026-02-03",
	})
	require.NoError(t, err)

	for _, row := range resp.Rows {
		if row.PersonID == "p1" {
			assert.Equal(t, "missing_checkout", row.Status)
			assert.Nil(t, row.WorkedMinutes)
		}
	}
}

func TestAnomalyReport(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.AnomalyReport(context.Background(), timesheet.AnomalyReportRequest{
		From: "2026-02-02",
		To:   "2026-02-05",
	})
	require.NoError(t, err)

	kinds := make(map[string]int)
	for _, a := range resp.Anomalies {
		kinds[a.Kind]++
		assert.NotEmpty(t, a.PersonName)
	}

	assert.Equal(t, 1, kinds["missing_checkout"])
	// p1 Thursday, p2 Tuesday through Thursday.
	assert.Equal(t, 4, kinds["unexplained_absence"])
}

func TestAnomalyReportInvertedRange(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.AnomalyReport(context.Background(), timesheet.AnomalyReportRequest{
		From: "2026-02-05",
		To:   "2026-02-02",
	})
	require.Error(t, err)
}

func TestSnapshotDay(t *testing.T) {
	svc, repo := newTestService(t)
	date := dateutil.NewDate(2026, time.February, 2)

	require.NoError(t, svc.SnapshotDay(context.Background(), date))

	stored := repo.snapshots[date]
	require.Len(t, stored, 2)
	for _, status := range stored {
		assert.Equal(t, date, status.Date)
	}
}

func TestSnapshotDayKeepsPreviousOnFailure(t *testing.T) {
	svc, repo := newTestService(t)
	date := dateutil.NewDate(2026, time.February, 2)

	previous := []timesheet.DayStatus{{PersonID: "p1", Date: date, Kind: timesheet.StatusNormal}}
	repo.snapshots = map[dateutil.Date][]timesheet.DayStatus{date: previous}
	repo.err = errors.New("connection reset")

	err := svc.SnapshotDay(context.Background(), date)
	require.Error(t, err)

	// The replace is a single atomic operation; a failed run must leave the
	// existing snapshot in place.
	assert.Equal(t, previous, repo.snapshots[date])
}
