package timesheet

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gmt-app/puantaj-backend-go/internal/domain/attendance"
	"github.com/gmt-app/puantaj-backend-go/internal/domain/leave"
	"github.com/gmt-app/puantaj-backend-go/internal/domain/schedule"
	"github.com/gmt-app/puantaj-backend-go/internal/domain/timesheet"
	"github.com/gmt-app/puantaj-backend-go/internal/pkg/dateutil"
)

var testShift = &schedule.ShiftDefinition{
	PersonID:     "p1",
	Window:       "09:00-18:00",
	BreakMinutes: 60,
}

func eventAt(kind attendance.EventKind, date dateutil.Date, hour, minute int) attendance.Event {
	return attendance.Event{
		ID:        "evt",
		PersonID:  "p1",
		Kind:      kind,
		Timestamp: time.Date(date.Year, date.Month, date.Day, hour, minute, 0, 0, time.UTC),
	}
}

func baseInput(date, today dateutil.Date) ResolveDayInput {
	return ResolveDayInput{
		PersonID: "p1",
		Date:     date,
		Today:    today,
		Shift:    testShift,
	}
}

func TestResolveDayPrecedence(t *testing.T) {
	date := dateutil.NewDate(2026, time.February, 2)
	today := dateutil.NewDate(2026, time.February, 10)
	note := "doctor visit"

	tests := []struct {
		name     string
		mutate   func(in *ResolveDayInput)
		wantKind timesheet.StatusKind
	}{
		{
			name: "holiday beats everything",
			mutate: func(in *ResolveDayInput) {
				in.IsHoliday = true
				in.HolidayName = "Kurban Bayramı"
				in.WeeklyRest = true
				in.HasLeave = true
				in.LeaveType = leave.TypeAnnual
			},
			wantKind: timesheet.StatusHoliday,
		},
		{
			name: "overridden holiday falls through to weekly rest",
			mutate: func(in *ResolveDayInput) {
				in.IsHoliday = true
				in.HolidayName = "Kurban Bayramı"
				in.HolidayOverride = true
				in.WeeklyRest = true
			},
			wantKind: timesheet.StatusWeeklyRest,
		},
		{
			name: "weekly rest beats leave",
			mutate: func(in *ResolveDayInput) {
				in.WeeklyRest = true
				in.HasLeave = true
				in.LeaveType = leave.TypeSick
			},
			wantKind: timesheet.StatusWeeklyRest,
		},
		{
			name: "leave beats excuse note",
			mutate: func(in *ResolveDayInput) {
				in.HasLeave = true
				in.LeaveType = leave.TypeSick
				e := eventAt(attendance.EventKindCheckIn, date, 9, 0)
				e.ExcuseNote = &note
				in.Events = []attendance.Event{e}
			},
			wantKind: timesheet.StatusLeave,
		},
		{
			name: "excuse note on an event marks the day excused",
			mutate: func(in *ResolveDayInput) {
				e := eventAt(attendance.EventKindCheckIn, date, 11, 0)
				e.ExcuseNote = &note
				in.Events = []attendance.Event{e}
			},
			wantKind: timesheet.StatusExcusedAbsence,
		},
		{
			name:     "nothing special means normal",
			mutate:   func(in *ResolveDayInput) {},
			wantKind: timesheet.StatusNormal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := baseInput(date, today)
			tt.mutate(&in)

			got := ResolveDay(in)
			assert.Equal(t, tt.wantKind, got.Kind)
		})
	}
}

func TestResolveDayHolidayKeepsName(t *testing.T) {
	date := dateutil.NewDate(2026, time.March, 21)
	today := dateutil.NewDate(2026, time.April, 1)

	in := baseInput(date, today)
	in.IsHoliday = true
	in.HolidayName = "Ramazan Bayramı"

	got := ResolveDay(in)
	assert.Equal(t, timesheet.StatusHoliday, got.Kind)
	require.NotNil(t, got.HolidayName)
	assert.Equal(t, "Ramazan Bayramı", *got.HolidayName)
	assert.Nil(t, got.CheckIn)
	assert.Zero(t, got.ExpectedMinutes)

	// Overriding the holiday demotes the kind but keeps the name, so the
	// override can be undone without losing information.
	in.HolidayOverride = true
	in.Events = []attendance.Event{
		eventAt(attendance.EventKindCheckIn, date, 9, 0),
		eventAt(attendance.EventKindCheckOut, date, 18, 0),
	}

	got = ResolveDay(in)
	assert.Equal(t, timesheet.StatusNormal, got.Kind)
	require.NotNil(t, got.HolidayName)
	assert.Equal(t, "Ramazan Bayramı", *got.HolidayName)
	require.NotNil(t, got.WorkedMinutes)
	assert.Equal(t, 480, *got.WorkedMinutes)
}

func TestResolveDayLeaveCarriesType(t *testing.T) {
	date := dateutil.NewDate(2026, time.February, 2)
	in := baseInput(date, dateutil.NewDate(2026, time.February, 10))
	in.HasLeave = true
	in.LeaveType = leave.TypeAnnual

	got := ResolveDay(in)
	assert.Equal(t, timesheet.StatusLeave, got.Kind)
	require.NotNil(t, got.LeaveType)
	assert.Equal(t, leave.TypeAnnual, *got.LeaveType)
	assert.Zero(t, got.ExpectedMinutes)
	assert.Empty(t, got.Anomalies)
}

func TestResolveDayAttendanceArithmetic(t *testing.T) {
	date := dateutil.NewDate(2026, time.February, 2)
	today := dateutil.NewDate(2026, time.February, 10)

	in := baseInput(date, today)
	in.Events = []attendance.Event{
		eventAt(attendance.EventKindCheckIn, date, 9, 5),
		eventAt(attendance.EventKindCheckOut, date, 18, 10),
	}

	got := ResolveDay(in)
	assert.Equal(t, timesheet.StatusNormal, got.Kind)
	assert.Equal(t, 480, got.ExpectedMinutes)
	require.NotNil(t, got.WorkedMinutes)
	assert.Equal(t, 485, *got.WorkedMinutes)
	assert.Empty(t, got.Anomalies)
}

func TestResolveDayPicksEarliestInLatestOut(t *testing.T) {
	date := dateutil.NewDate(2026, time.February, 2)
	in := baseInput(date, dateutil.NewDate(2026, time.February, 10))
	in.Events = []attendance.Event{
		eventAt(attendance.EventKindCheckIn, date, 9, 30),
		eventAt(attendance.EventKindCheckIn, date, 8, 55),
		eventAt(attendance.EventKindCheckOut, date, 13, 0),
		eventAt(attendance.EventKindCheckOut, date, 18, 45),
		eventAt(attendance.EventKindCheckIn, date, 13, 30),
	}

	got := ResolveDay(in)
	require.NotNil(t, got.CheckIn)
	require.NotNil(t, got.CheckOut)
	assert.Equal(t, "08:55", got.CheckIn.Format("15:04"))
	assert.Equal(t, "18:45", got.CheckOut.Format("15:04"))
}

func TestResolveDayOrderIndependence(t *testing.T) {
	date := dateutil.NewDate(2026, time.February, 2)
	events := []attendance.Event{
		eventAt(attendance.EventKindCheckIn, date, 8, 55),
		eventAt(attendance.EventKindCheckIn, date, 9, 30),
		eventAt(attendance.EventKindCheckOut, date, 13, 0),
		eventAt(attendance.EventKindCheckOut, date, 18, 45),
	}

	in := baseInput(date, dateutil.NewDate(2026, time.February, 10))
	in.Events = events
	want := ResolveDay(in)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := make([]attendance.Event, len(events))
		copy(shuffled, events)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		in.Events = shuffled
		assert.Equal(t, want, ResolveDay(in))
	}
}

func TestResolveDayIdempotent(t *testing.T) {
	date := dateutil.NewDate(2026, time.February, 2)
	in := baseInput(date, dateutil.NewDate(2026, time.February, 10))
	in.Events = []attendance.Event{
		eventAt(attendance.EventKindCheckIn, date, 8, 55),
	}

	first := ResolveDay(in)
	second := ResolveDay(in)
	assert.Equal(t, first, second)
}

func TestResolveDayMissingCheckout(t *testing.T) {
	date := dateutil.NewDate(2026, time.February, 2)
	today := dateutil.NewDate(2026, time.February, 10)

	t.Run("past day with only a check-in is flagged", func(t *testing.T) {
		in := baseInput(date, today)
		in.Events = []attendance.Event{eventAt(attendance.EventKindCheckIn, date, 8, 55)}

		got := ResolveDay(in)
		assert.True(t, got.HasAnomaly(timesheet.AnomalyMissingCheckout))
		assert.Nil(t, got.WorkedMinutes, "worked minutes stay undefined, not zero")
		require.NotNil(t, got.CheckIn)
		assert.Equal(t, "08:55", got.CheckIn.Format("15:04"))
	})

	t.Run("today with only a check-in is still in progress", func(t *testing.T) {
		in := baseInput(today, today)
		in.Events = []attendance.Event{eventAt(attendance.EventKindCheckIn, today, 8, 55)}

		got := ResolveDay(in)
		assert.Empty(t, got.Anomalies)
		assert.Nil(t, got.WorkedMinutes)
	})
}

func TestResolveDayAbsence(t *testing.T) {
	date := dateutil.NewDate(2026, time.February, 2)
	today := dateutil.NewDate(2026, time.February, 10)

	t.Run("past empty day with a shift is an unexplained absence", func(t *testing.T) {
		got := ResolveDay(baseInput(date, today))
		assert.True(t, got.HasAnomaly(timesheet.AnomalyUnexplainedAbsence))
		assert.Equal(t, 480, got.ExpectedMinutes)
	})

	t.Run("past empty day without a shift flags the shift instead", func(t *testing.T) {
		in := baseInput(date, today)
		in.Shift = nil

		got := ResolveDay(in)
		assert.True(t, got.HasAnomaly(timesheet.AnomalyUndefinedShift))
		assert.False(t, got.HasAnomaly(timesheet.AnomalyUnexplainedAbsence))
		assert.Zero(t, got.ExpectedMinutes)
	})

	t.Run("empty today is left alone", func(t *testing.T) {
		got := ResolveDay(baseInput(today, today))
		assert.Empty(t, got.Anomalies)
	})

	t.Run("future day is never an absence", func(t *testing.T) {
		got := ResolveDay(baseInput(dateutil.NewDate(2026, time.February, 20), today))
		assert.False(t, got.HasAnomaly(timesheet.AnomalyUnexplainedAbsence))
	})
}

func TestResolveDayUnparseableWindow(t *testing.T) {
	date := dateutil.NewDate(2026, time.February, 2)
	in := baseInput(date, dateutil.NewDate(2026, time.February, 10))
	in.Shift = &schedule.ShiftDefinition{PersonID: "p1", Window: "22:00-06:00", BreakMinutes: 60}
	in.Events = []attendance.Event{
		eventAt(attendance.EventKindCheckIn, date, 9, 0),
		eventAt(attendance.EventKindCheckOut, date, 18, 0),
	}

	got := ResolveDay(in)
	assert.True(t, got.HasAnomaly(timesheet.AnomalyUndefinedShift))
	assert.Zero(t, got.ExpectedMinutes)
	require.NotNil(t, got.WorkedMinutes, "attendance arithmetic still runs")
	assert.Equal(t, 480, *got.WorkedMinutes)
}
