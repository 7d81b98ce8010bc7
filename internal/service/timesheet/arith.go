package timesheet

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnparseableWindow covers malformed shift strings and overnight windows
// (end before start). Overnight shifts are not supported: they surface as an
// undefined shift rather than silently wrapping past midnight.
var ErrUnparseableWindow = errors.New("unparseable shift window")

// ShiftWindow is a same-day working window in minutes since midnight.
type ShiftWindow struct {
	StartMinute int
	EndMinute   int
}

// ParseShiftWindow parses "HH:MM-HH:MM". The end must not precede the start.
func ParseShiftWindow(s string) (ShiftWindow, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return ShiftWindow{}, fmt.Errorf("%w: %q", ErrUnparseableWindow, s)
	}

	start, err := parseClock(parts[0])
	if err != nil {
		return ShiftWindow{}, fmt.Errorf("%w: %q", ErrUnparseableWindow, s)
	}
	end, err := parseClock(parts[1])
	if err != nil {
		return ShiftWindow{}, fmt.Errorf("%w: %q", ErrUnparseableWindow, s)
	}

	if end < start {
		return ShiftWindow{}, fmt.Errorf("%w: %q ends before it starts", ErrUnparseableWindow, s)
	}

	return ShiftWindow{StartMinute: start, EndMinute: end}, nil
}

func parseClock(s string) (int, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// ExpectedMinutes is the window length net of break time, never negative.
func ExpectedMinutes(w ShiftWindow, breakMinutes int) int {
	m := w.EndMinute - w.StartMinute - breakMinutes
	if m < 0 {
		return 0
	}
	return m
}

// WorkedMinutes is the elapsed time between check-in and check-out net of
// break time, never negative.
func WorkedMinutes(checkIn, checkOut time.Time, breakMinutes int) int {
	m := int(checkOut.Sub(checkIn).Minutes()) - breakMinutes
	if m < 0 {
		return 0
	}
	return m
}

// suggestionOffset is the fixed gap used to prefill a missing counterpart
// time in the entry form. It is a UI nudge only and never feeds day-status
// resolution.
const suggestionOffset = 9 * time.Hour

func SuggestCheckOut(checkIn time.Time) time.Time {
	return checkIn.Add(suggestionOffset)
}

func SuggestCheckIn(checkOut time.Time) time.Time {
	return checkOut.Add(-suggestionOffset)
}
