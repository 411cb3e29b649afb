package schedule

import (
	"errors"
	"fmt"
	"time"

	"bagdrop/models"

	"go.uber.org/zap"
)

var ErrInvalidTimings = errors.New("invalid station timings")

// TimingsError describes why one weekday of a timings payload was rejected.
type TimingsError struct {
	Day     string
	Message string
}

func (e *TimingsError) Error() string {
	return fmt.Sprintf("%s: %s", e.Day, e.Message)
}

func (e *TimingsError) Unwrap() error { return ErrInvalidTimings }

// weekOrder lists weekdays Monday first, matching how partners enter hours.
var weekOrder = [7]time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday,
}

// ParseTimings is the strict data-entry parser. A day left out of the payload is closed.
// Equal open and close times are rejected rather than guessed at.
func ParseTimings(t models.Timings, loc *time.Location) (Schedule, error) {
	if t.Is24Hours {
		return Always(loc), nil
	}
	var days [7]DayHours
	for _, wd := range weekOrder {
		dh, err := parseDay(t.Day(wd))
		if err != nil {
			return Schedule{}, &TimingsError{Day: DayName(wd), Message: err.Error()}
		}
		days[wd] = dh
	}
	return Weekly(days, loc), nil
}

func parseDay(ds *models.DaySchedule) (DayHours, error) {
	if ds == nil || ds.Closed {
		return DayHours{Closed: true}, nil
	}
	open, err := parseClock(ds.Open)
	if err != nil {
		return DayHours{}, fmt.Errorf("open: %w", err)
	}
	closeAt, err := parseClock(ds.Close)
	if err != nil {
		return DayHours{}, fmt.Errorf("close: %w", err)
	}
	if open == closeAt {
		return DayHours{}, errors.New("open and close are equal; mark the day closed or the station as 24 hours")
	}
	return DayHours{Open: open, Close: closeAt}, nil
}

// FromTimings converts stored timings for the read path. Days that would fail ParseTimings
// (legacy documents written before validation) are treated as closed.
func FromTimings(t models.Timings, loc *time.Location, logger *zap.Logger) Schedule {
	if t.Is24Hours {
		return Always(loc)
	}
	var days [7]DayHours
	for _, wd := range weekOrder {
		dh, err := parseDay(t.Day(wd))
		if err != nil {
			if logger != nil {
				logger.Warn("stored day schedule is invalid, treating as closed",
					zap.String("day", DayName(wd)), zap.Error(err))
			}
			dh = DayHours{Closed: true}
		}
		days[wd] = dh
	}
	return Weekly(days, loc)
}

// ForStation builds the read-path schedule in the station's own timezone.
func ForStation(st models.Station, fallback *time.Location, logger *zap.Logger) Schedule {
	loc := fallback
	if st.Timezone != "" {
		l, err := time.LoadLocation(st.Timezone)
		if err != nil {
			if logger != nil {
				logger.Warn("unknown station timezone, using default",
					zap.String("stationID", st.ID), zap.String("timezone", st.Timezone), zap.Error(err))
			}
		} else {
			loc = l
		}
	}
	if logger != nil {
		logger = logger.With(zap.String("stationID", st.ID))
	}
	return FromTimings(st.Timings, loc, logger)
}
