package schedule

import (
	"fmt"
	"time"
)

const minutesPerDay = 24 * 60

// DayHours is one weekday's opening window in minutes since local midnight.
// Close < Open means the window runs past midnight into the next calendar day.
type DayHours struct {
	Closed bool
	Open   int
	Close  int
}

// Overnight reports whether the window crosses midnight.
func (d DayHours) Overnight() bool {
	return d.Close < d.Open
}

// Contains reports whether minute-of-day m falls inside the window, both ends inclusive.
func (d DayHours) Contains(m int) bool {
	if d.Closed {
		return false
	}
	if d.Overnight() {
		return m >= d.Open || m <= d.Close
	}
	return m >= d.Open && m <= d.Close
}

func (d DayHours) OpenClock() string  { return formatClock(d.Open) }
func (d DayHours) CloseClock() string { return formatClock(d.Close) }

// parseClock converts "HH:MM" (24h) into minutes since midnight.
func parseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

func formatClock(m int) string {
	m = ((m % minutesPerDay) + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
