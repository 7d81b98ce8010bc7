package leave

import (
	"testing"
	"time"

	"github.com/gmt-app/puantaj-backend-go/internal/domain/leave"
	"github.com/gmt-app/puantaj-backend-go/internal/domain/schedule"
	"github.com/gmt-app/puantaj-backend-go/internal/domain/timesheet"
	"github.com/gmt-app/puantaj-backend-go/internal/pkg/dateutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) dateutil.Date {
	return dateutil.NewDate(y, m, d)
}

func key(person string, d dateutil.Date) timesheet.DayKey {
	return timesheet.DayKey{PersonID: person, Date: d}
}

func TestBuildFacts_ExpandsPeriodInclusive(t *testing.T) {
	periods := []leave.Period{
		{
			ID:        "p1",
			PersonID:  "emp-1",
			StartDate: day(2026, time.June, 1),
			EndDate:   day(2026, time.June, 5),
			Type:      leave.TypeAnnual,
			Status:    leave.PeriodStatusApproved,
		},
	}

	facts := BuildFacts(periods, nil, dateutil.Date{}, dateutil.Date{})

	require.Len(t, facts.Leave, 5)
	for d := 1; d <= 5; d++ {
		got, ok := facts.LeaveTypeOn(key("emp-1", day(2026, time.June, d)))
		require.True(t, ok, "day %d missing", d)
		assert.Equal(t, leave.TypeAnnual, got)
	}
}

func TestBuildFacts_RoundTripDistinctDates(t *testing.T) {
	// Expanding an N-day period yields exactly N unique dates.
	periods := []leave.Period{
		{
			PersonID:  "emp-1",
			StartDate: day(2026, time.July, 10),
			EndDate:   day(2026, time.July, 16),
			Type:      leave.TypeUnpaid,
			Status:    leave.PeriodStatusApproved,
		},
	}

	facts := BuildFacts(periods, nil, dateutil.Date{}, dateutil.Date{})

	seen := make(map[dateutil.Date]bool)
	for k := range facts.Leave {
		seen[k.Date] = true
	}
	assert.Len(t, seen, 7)
}

func TestBuildFacts_IgnoresUnapproved(t *testing.T) {
	periods := []leave.Period{
		{
			PersonID:  "emp-1",
			StartDate: day(2026, time.June, 1),
			EndDate:   day(2026, time.June, 3),
			Type:      leave.TypeSick,
			Status:    leave.PeriodStatusPending,
		},
		{
			PersonID:  "emp-1",
			StartDate: day(2026, time.June, 10),
			EndDate:   day(2026, time.June, 10),
			Type:      leave.TypeSick,
			Status:    leave.PeriodStatusRejected,
		},
	}

	facts := BuildFacts(periods, nil, dateutil.Date{}, dateutil.Date{})
	assert.Empty(t, facts.Leave)
}

func TestBuildFacts_EndBeforeStartYieldsNothing(t *testing.T) {
	periods := []leave.Period{
		{
			PersonID:  "emp-1",
			StartDate: day(2026, time.June, 5),
			EndDate:   day(2026, time.June, 1),
			Type:      leave.TypeAnnual,
			Status:    leave.PeriodStatusApproved,
		},
	}

	facts := BuildFacts(periods, nil, dateutil.Date{}, dateutil.Date{})
	assert.Empty(t, facts.Leave)
}

func TestBuildFacts_MissingDatesSkipRecordEntirely(t *testing.T) {
	periods := []leave.Period{
		{
			ID:       "broken",
			PersonID: "emp-1",
			// StartDate left zero
			EndDate: day(2026, time.June, 3),
			Type:    leave.TypeAnnual,
			Status:  leave.PeriodStatusApproved,
		},
		{
			PersonID:  "emp-2",
			StartDate: day(2026, time.June, 2),
			EndDate:   day(2026, time.June, 2),
			Type:      leave.TypeExcused,
			Status:    leave.PeriodStatusApproved,
		},
	}

	facts := BuildFacts(periods, nil, dateutil.Date{}, dateutil.Date{})

	require.Len(t, facts.Leave, 1)
	_, ok := facts.LeaveTypeOn(key("emp-2", day(2026, time.June, 2)))
	assert.True(t, ok)
}

func TestBuildFacts_RangeBound(t *testing.T) {
	periods := []leave.Period{
		{
			PersonID:  "emp-1",
			StartDate: day(2026, time.May, 28),
			EndDate:   day(2026, time.June, 3),
			Type:      leave.TypeAnnual,
			Status:    leave.PeriodStatusApproved,
		},
	}

	facts := BuildFacts(periods, nil, day(2026, time.June, 1), day(2026, time.June, 30))

	assert.Len(t, facts.Leave, 3) // June 1, 2, 3 only
	_, ok := facts.LeaveTypeOn(key("emp-1", day(2026, time.May, 31)))
	assert.False(t, ok)
}

func TestBuildFacts_WeeklyRestEntries(t *testing.T) {
	entries := []schedule.PlanEntry{
		{ID: "e1", PersonID: "emp-1", Date: day(2026, time.June, 7), IsWeeklyRest: true},
		{ID: "e2", PersonID: "emp-1", Date: day(2026, time.June, 8), IsWeeklyRest: false},
	}

	facts := BuildFacts(nil, entries, dateutil.Date{}, dateutil.Date{})

	assert.True(t, facts.IsWeeklyRest(key("emp-1", day(2026, time.June, 7))))
	assert.False(t, facts.IsWeeklyRest(key("emp-1", day(2026, time.June, 8))))
}

func TestFacts_WeeklyRestPeriodCountsAsRest(t *testing.T) {
	periods := []leave.Period{
		{
			PersonID:  "emp-1",
			StartDate: day(2026, time.June, 14),
			EndDate:   day(2026, time.June, 14),
			Type:      leave.TypeWeeklyRest,
			Status:    leave.PeriodStatusApproved,
		},
	}

	facts := BuildFacts(periods, nil, dateutil.Date{}, dateutil.Date{})
	assert.True(t, facts.IsWeeklyRest(key("emp-1", day(2026, time.June, 14))))
}

func TestBuildFacts_BothSourcesSameDay(t *testing.T) {
	// Both signals stay visible; arbitration is the resolver's job.
	d := day(2026, time.June, 21)
	periods := []leave.Period{
		{
			PersonID:  "emp-1",
			StartDate: d,
			EndDate:   d,
			Type:      leave.TypeSick,
			Status:    leave.PeriodStatusApproved,
		},
	}
	entries := []schedule.PlanEntry{
		{PersonID: "emp-1", Date: d, IsWeeklyRest: true},
	}

	facts := BuildFacts(periods, entries, dateutil.Date{}, dateutil.Date{})

	got, ok := facts.LeaveTypeOn(key("emp-1", d))
	require.True(t, ok)
	assert.Equal(t, leave.TypeSick, got)
	assert.True(t, facts.IsWeeklyRest(key("emp-1", d)))
}
