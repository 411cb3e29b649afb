package schedule

import (
	"strings"
	"time"
)

// Schedule answers point-in-time open/closed queries for one station.
// Days are indexed by time.Weekday, so every weekday always has an entry.
type Schedule struct {
	always bool
	days   [7]DayHours
	loc    *time.Location
}

// Always returns a schedule that is open at every instant.
func Always(loc *time.Location) Schedule {
	return Schedule{always: true, loc: orUTC(loc)}
}

// Weekly returns a schedule from per-weekday hours.
func Weekly(days [7]DayHours, loc *time.Location) Schedule {
	return Schedule{days: days, loc: orUTC(loc)}
}

func orUTC(loc *time.Location) *time.Location {
	if loc == nil {
		return time.UTC
	}
	return loc
}

func (s Schedule) Is24Hours() bool { return s.always }

func (s Schedule) Location() *time.Location { return orUTC(s.loc) }

// Day returns the configured hours for a weekday.
func (s Schedule) Day(day time.Weekday) DayHours {
	return s.days[day]
}

// IsOpenAt reports whether t falls inside the opening window of t's local calendar day.
func (s Schedule) IsOpenAt(t time.Time) bool {
	if s.always {
		return true
	}
	local := t.In(s.Location())
	return s.days[local.Weekday()].Contains(minuteOfDay(local))
}

// HasOpenDay reports whether the station opens at all during the week.
func (s Schedule) HasOpenDay() bool {
	if s.always {
		return true
	}
	for _, d := range s.days {
		if !d.Closed {
			return true
		}
	}
	return false
}

// DayName is the lowercase weekday key used on station documents ("monday", ...).
func DayName(day time.Weekday) string {
	return strings.ToLower(day.String())
}
