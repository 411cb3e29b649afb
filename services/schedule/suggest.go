package schedule

import (
	"fmt"
	"time"

	"bagdrop/models"
)

// maxDaySteps bounds the forward search; a full week revisits the starting weekday.
const maxDaySteps = 7

// Validate checks t against the schedule. It never fails: an invalid instant comes back
// with suggestions, or with NoValidTime set when the station never opens.
func (s Schedule) Validate(t time.Time) models.TimingValidation {
	local := t.In(s.Location())
	day := s.days[local.Weekday()]
	v := models.TimingValidation{
		DayName:     DayName(local.Weekday()),
		Suggestions: []models.Suggestion{},
	}

	if s.always {
		v.IsValid = true
		return v
	}
	if !day.Closed {
		v.OpenTime = day.OpenClock()
		v.CloseTime = day.CloseClock()
	}
	if day.Contains(minuteOfDay(local)) {
		v.IsValid = true
		return v
	}

	if day.Closed {
		v.Closed = true
		v.Message = fmt.Sprintf("Station is closed on %s", local.Weekday())
	} else {
		v.Message = fmt.Sprintf("Station is open %s-%s on %s", v.OpenTime, v.CloseTime, local.Weekday())
	}

	v.Suggestions = s.Suggest(t)
	if len(v.Suggestions) == 0 {
		v.NoValidTime = true
		v.Message = "No valid time found: station has no opening hours in the coming week"
	}
	return v
}

// Suggest returns the earliest valid instant after an out-of-hours t as a list of at
// most one entry. It returns nil when t is already valid or when no day of the week is open.
func (s Schedule) Suggest(t time.Time) []models.Suggestion {
	if s.always {
		return nil
	}
	local := t.In(s.Location())
	day := s.days[local.Weekday()]
	m := minuteOfDay(local)
	if day.Contains(m) {
		return nil
	}

	// Before opening on an open day. For an overnight window every invalid minute
	// sits between close and open, so this branch also covers it.
	if !day.Closed && m < day.Open {
		return []models.Suggestion{{
			Label:    fmt.Sprintf("Same day: station opens at %s", day.OpenClock()),
			DateTime: s.at(local, day.Open),
		}}
	}

	next, ok := s.nextOpening(local)
	if !ok {
		return nil
	}
	return []models.Suggestion{{
		Label:    fmt.Sprintf("Next available: station opens %s at %s", next.Weekday(), formatClock(minuteOfDay(next))),
		DateTime: next,
	}}
}

// nextOpening finds the opening instant of the first open day after local's calendar day.
func (s Schedule) nextOpening(local time.Time) (time.Time, bool) {
	for step := 1; step <= maxDaySteps; step++ {
		d := local.AddDate(0, 0, step)
		dh := s.days[d.Weekday()]
		if dh.Closed {
			continue
		}
		return s.at(d, dh.Open), true
	}
	return time.Time{}, false
}

// at returns minute m of day's calendar date in the schedule's location.
func (s Schedule) at(day time.Time, m int) time.Time {
	y, mo, d := day.Date()
	return time.Date(y, mo, d, m/60, m%60, 0, 0, s.Location())
}
