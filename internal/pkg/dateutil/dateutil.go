package dateutil

import (
	"fmt"
	"time"
)

// Date is a civil calendar date with no time-of-day and no timezone.
// It compares structurally, so it is safe to use inside map keys.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the given calendar date, normalized through the Gregorian
// calendar (e.g. January 32 becomes February 1).
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf extracts the calendar date from t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Time returns midnight of d in UTC.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) Before(other Date) bool { return d.Time().Before(other.Time()) }
func (d Date) After(other Date) bool  { return d.Time().After(other.Time()) }

func (d Date) Weekday() time.Weekday { return d.Time().Weekday() }

// AddDays returns the date n days after d. It never mutates d.
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// Next returns the following calendar day.
func (d Date) Next() Date {
	return d.AddDays(1)
}

// DaysUntil returns the number of whole days from d to other.
// Negative when other is before d; zero when equal.
func (d Date) DaysUntil(other Date) int {
	return int(other.Time().Sub(d.Time()) / (24 * time.Hour))
}

// Range returns every calendar date from start to end inclusive, in order.
// It returns nil when end is before start.
func Range(start, end Date) []Date {
	if end.Before(start) {
		return nil
	}
	days := make([]Date, 0, start.DaysUntil(end)+1)
	for d := start; !d.After(end); d = d.Next() {
		days = append(days, d)
	}
	return days
}

// MonthBounds returns the first and last day of the given month.
func MonthBounds(year int, month time.Month) (Date, Date) {
	first := NewDate(year, month, 1)
	last := NewDate(year, month+1, 0)
	return first, last
}

// WeekBounds returns the Monday and Sunday of the week containing d.
func WeekBounds(d Date) (Date, Date) {
	offset := int(d.Weekday()-time.Monday+7) % 7
	monday := d.AddDays(-offset)
	return monday, monday.AddDays(6)
}
