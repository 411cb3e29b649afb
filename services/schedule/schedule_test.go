package schedule

import (
	"errors"
	"testing"
	"time"

	"bagdrop/models"
)

// 2026-01-26 is a Monday.
func monday(hour, minute int) time.Time {
	return time.Date(2026, 1, 26, hour, minute, 0, 0, time.UTC)
}

func everyDay(open, close string) models.Timings {
	var t models.Timings
	for _, wd := range weekOrder {
		t.SetDay(wd, &models.DaySchedule{Open: open, Close: close})
	}
	return t
}

func mustParse(t *testing.T, timings models.Timings) Schedule {
	t.Helper()
	s, err := ParseTimings(timings, time.UTC)
	if err != nil {
		t.Fatalf("parse timings: %v", err)
	}
	return s
}

func TestIsOpenAt_SameDayWindow(t *testing.T) {
	s := mustParse(t, everyDay("09:00", "18:00"))

	cases := []struct {
		at   time.Time
		want bool
	}{
		{monday(8, 59), false},
		{monday(9, 0), true},
		{monday(12, 30), true},
		{monday(18, 0), true},
		{monday(18, 1), false},
	}
	for _, c := range cases {
		if got := s.IsOpenAt(c.at); got != c.want {
			t.Errorf("IsOpenAt(%s) = %v, want %v", c.at.Format("15:04"), got, c.want)
		}
	}
}

func TestIsOpenAt_CrossMidnight(t *testing.T) {
	s := mustParse(t, everyDay("22:00", "06:00"))

	if !s.IsOpenAt(monday(23, 30)) {
		t.Error("expected 23:30 to be inside a 22:00-06:00 window")
	}
	if s.IsOpenAt(monday(7, 0)) {
		t.Error("expected 07:00 to be outside a 22:00-06:00 window")
	}
	if !s.IsOpenAt(monday(5, 59)) {
		t.Error("expected 05:59 to be inside a 22:00-06:00 window")
	}
	if !s.IsOpenAt(monday(0, 0)) {
		t.Error("expected midnight to be inside a 22:00-06:00 window")
	}
	if s.IsOpenAt(monday(21, 59)) {
		t.Error("expected 21:59 to be outside a 22:00-06:00 window")
	}
}

func TestIsOpenAt_24Hours(t *testing.T) {
	s := mustParse(t, models.Timings{Is24Hours: true})
	for h := 0; h < 24; h++ {
		if !s.IsOpenAt(monday(h, 17)) {
			t.Fatalf("24 hour station closed at %02d:17", h)
		}
	}
}

func TestIsOpenAt_ClosedDay(t *testing.T) {
	timings := everyDay("09:00", "18:00")
	timings.Monday = &models.DaySchedule{Closed: true}
	s := mustParse(t, timings)

	if s.IsOpenAt(monday(12, 0)) {
		t.Error("expected closed Monday to reject noon")
	}
	if !s.IsOpenAt(monday(12, 0).AddDate(0, 0, 1)) {
		t.Error("expected Tuesday noon to be open")
	}
}

func TestIsOpenAt_UsesScheduleLocation(t *testing.T) {
	plus3 := time.FixedZone("UTC+3", 3*60*60)
	s, err := ParseTimings(everyDay("09:00", "18:00"), plus3)
	if err != nil {
		t.Fatalf("parse timings: %v", err)
	}
	// 07:00 UTC is 10:00 local.
	if !s.IsOpenAt(monday(7, 0)) {
		t.Error("expected 07:00 UTC to be open for a UTC+3 station")
	}
	// 16:00 UTC is 19:00 local.
	if s.IsOpenAt(monday(16, 0)) {
		t.Error("expected 16:00 UTC to be closed for a UTC+3 station")
	}
}

func TestParseTimings_RejectsEqualOpenClose(t *testing.T) {
	timings := everyDay("09:00", "18:00")
	timings.Wednesday = &models.DaySchedule{Open: "10:00", Close: "10:00"}

	_, err := ParseTimings(timings, time.UTC)
	if err == nil {
		t.Fatal("expected equal open/close to be rejected")
	}
	if !errors.Is(err, ErrInvalidTimings) {
		t.Fatalf("expected ErrInvalidTimings, got %v", err)
	}
	var te *TimingsError
	if !errors.As(err, &te) || te.Day != "wednesday" {
		t.Fatalf("expected wednesday TimingsError, got %v", err)
	}
}

func TestParseTimings_RejectsMalformedClock(t *testing.T) {
	for _, bad := range []string{"25:00", "9am", "", "12:60"} {
		timings := everyDay("09:00", "18:00")
		timings.Friday = &models.DaySchedule{Open: bad, Close: "18:00"}
		if _, err := ParseTimings(timings, time.UTC); !errors.Is(err, ErrInvalidTimings) {
			t.Errorf("open %q: expected ErrInvalidTimings, got %v", bad, err)
		}
	}
}

func TestParseTimings_MissingDayIsClosed(t *testing.T) {
	timings := models.Timings{Monday: &models.DaySchedule{Open: "09:00", Close: "17:00"}}
	s := mustParse(t, timings)

	if s.Day(time.Tuesday).Closed != true {
		t.Error("expected unset Tuesday to be closed")
	}
	if s.Day(time.Monday).Open != 9*60 || s.Day(time.Monday).Close != 17*60 {
		t.Errorf("unexpected Monday hours: %+v", s.Day(time.Monday))
	}
}

func TestFromTimings_TreatsInvalidDayAsClosed(t *testing.T) {
	timings := everyDay("09:00", "18:00")
	timings.Monday = &models.DaySchedule{Open: "08:00", Close: "08:00"}

	s := FromTimings(timings, time.UTC, nil)
	if !s.Day(time.Monday).Closed {
		t.Error("expected legacy equal open/close day to be read as closed")
	}
	if s.Day(time.Tuesday).Closed {
		t.Error("expected Tuesday to stay open")
	}
}

func TestForStation_FallsBackOnUnknownTimezone(t *testing.T) {
	st := models.Station{ID: "st-1", Timezone: "Not/AZone", Timings: models.Timings{Is24Hours: true}}
	s := ForStation(st, time.UTC, nil)
	if s.Location() != time.UTC {
		t.Errorf("expected fallback location UTC, got %s", s.Location())
	}
}

func TestDay_ReportsParsedHours(t *testing.T) {
	s := mustParse(t, everyDay("18:30", "02:00"))
	d := s.Day(time.Friday)
	if d.Closed || d.OpenClock() != "18:30" || d.CloseClock() != "02:00" || !d.Overnight() {
		t.Fatalf("unexpected friday hours: %+v", d)
	}
}

func TestHasOpenDay(t *testing.T) {
	if mustParse(t, models.Timings{}).HasOpenDay() {
		t.Fatal("expected empty timings to never open")
	}
	if !mustParse(t, models.Timings{Is24Hours: true}).HasOpenDay() {
		t.Fatal("expected 24 hour schedule to open")
	}
	if !mustParse(t, models.Timings{Sunday: &models.DaySchedule{Open: "10:00", Close: "12:00"}}).HasOpenDay() {
		t.Fatal("expected a single open day to count")
	}
}
