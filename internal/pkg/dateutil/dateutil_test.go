package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-20")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2026, Month: time.March, Day: 20}, d)

	_, err = ParseDate("2026-3-20")
	assert.Error(t, err)
	_, err = ParseDate("20.03.2026")
	assert.Error(t, err)
	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestDateString(t *testing.T) {
	assert.Equal(t, "2026-01-05", NewDate(2026, time.January, 5).String())
}

func TestNewDateNormalizes(t *testing.T) {
	// January 32 rolls over to February 1.
	assert.Equal(t, NewDate(2026, time.February, 1), NewDate(2026, time.January, 32))
}

func TestAddDaysDoesNotMutate(t *testing.T) {
	d := NewDate(2026, time.February, 27)
	next := d.AddDays(2)
	assert.Equal(t, NewDate(2026, time.February, 27), d)
	assert.Equal(t, NewDate(2026, time.March, 1), next)
}

func TestDaysUntil(t *testing.T) {
	a := NewDate(2026, time.February, 1)
	b := NewDate(2026, time.February, 15)
	assert.Equal(t, 14, a.DaysUntil(b))
	assert.Equal(t, -14, b.DaysUntil(a))
	assert.Equal(t, 0, a.DaysUntil(a))
}

func TestRange(t *testing.T) {
	start := NewDate(2026, time.March, 20)
	end := NewDate(2026, time.March, 22)

	days := Range(start, end)
	require.Len(t, days, 3)
	assert.Equal(t, start, days[0])
	assert.Equal(t, NewDate(2026, time.March, 21), days[1])
	assert.Equal(t, end, days[2])

	assert.Len(t, Range(start, start), 1)
	assert.Nil(t, Range(end, start))
}

func TestMonthBounds(t *testing.T) {
	first, last := MonthBounds(2026, time.February)
	assert.Equal(t, NewDate(2026, time.February, 1), first)
	assert.Equal(t, NewDate(2026, time.February, 28), last)

	_, lastLeap := MonthBounds(2028, time.February)
	assert.Equal(t, NewDate(2028, time.February, 29), lastLeap)
}

func TestWeekBounds(t *testing.T) {
	// 2026-08-26 is a Wednesday.
	monday, sunday := WeekBounds(NewDate(2026, time.August, 26))
	assert.Equal(t, NewDate(2026, time.August, 24), monday)
	assert.Equal(t, NewDate(2026, time.August, 30), sunday)

	// A Monday maps to itself.
	monday, _ = WeekBounds(NewDate(2026, time.August, 24))
	assert.Equal(t, NewDate(2026, time.August, 24), monday)

	// A Sunday belongs to the week that started six days earlier.
	monday, sunday = WeekBounds(NewDate(2026, time.August, 30))
	assert.Equal(t, NewDate(2026, time.August, 24), monday)
	assert.Equal(t, NewDate(2026, time.August, 30), sunday)
}
