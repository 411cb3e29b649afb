package models

import "time"

const (
	StationStatusActive   = "active"
	StationStatusInactive = "inactive"
)

// GeoPoint represents a GeoJSON Point.
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`               // Always "Point"
	Coordinates []float64 `bson:"coordinates" json:"coordinates"` // [longitude, latitude]
}

// NewGeoPoint builds a GeoJSON point from latitude/longitude.
func NewGeoPoint(lat, lon float64) GeoPoint {
	return GeoPoint{Type: "Point", Coordinates: []float64{lon, lat}}
}

// DaySchedule is one weekday's opening hours as stored on the station document.
type DaySchedule struct {
	Closed bool   `bson:"closed" json:"closed"`
	Open   string `bson:"open,omitempty" json:"open,omitempty"`   // "HH:MM", 24h
	Close  string `bson:"close,omitempty" json:"close,omitempty"` // "HH:MM", 24h; earlier than Open means past midnight
}

// Timings is either a 24-hour flag or a per-weekday schedule.
type Timings struct {
	Is24Hours bool         `bson:"is24Hours" json:"is24Hours"`
	Monday    *DaySchedule `bson:"monday,omitempty" json:"monday,omitempty"`
	Tuesday   *DaySchedule `bson:"tuesday,omitempty" json:"tuesday,omitempty"`
	Wednesday *DaySchedule `bson:"wednesday,omitempty" json:"wednesday,omitempty"`
	Thursday  *DaySchedule `bson:"thursday,omitempty" json:"thursday,omitempty"`
	Friday    *DaySchedule `bson:"friday,omitempty" json:"friday,omitempty"`
	Saturday  *DaySchedule `bson:"saturday,omitempty" json:"saturday,omitempty"`
	Sunday    *DaySchedule `bson:"sunday,omitempty" json:"sunday,omitempty"`
}

// Day returns the stored schedule for a weekday, or nil when the day was never configured.
func (t Timings) Day(day time.Weekday) *DaySchedule {
	switch day {
	case time.Monday:
		return t.Monday
	case time.Tuesday:
		return t.Tuesday
	case time.Wednesday:
		return t.Wednesday
	case time.Thursday:
		return t.Thursday
	case time.Friday:
		return t.Friday
	case time.Saturday:
		return t.Saturday
	case time.Sunday:
		return t.Sunday
	}
	return nil
}

// SetDay stores the schedule for a weekday.
func (t *Timings) SetDay(day time.Weekday, ds *DaySchedule) {
	switch day {
	case time.Monday:
		t.Monday = ds
	case time.Tuesday:
		t.Tuesday = ds
	case time.Wednesday:
		t.Wednesday = ds
	case time.Thursday:
		t.Thursday = ds
	case time.Friday:
		t.Friday = ds
	case time.Saturday:
		t.Saturday = ds
	case time.Sunday:
		t.Sunday = ds
	}
}

type Station struct {
	ID       string   `bson:"id" json:"id"`
	Name     string   `bson:"name" json:"name"`
	Location string   `bson:"location" json:"location,omitempty"`
	GeoPoint GeoPoint `bson:"geoPoint" json:"geoPoint"`
	// Total bag slots. Zero (or missing) means unlimited.
	Capacity  int       `bson:"capacity,omitempty" json:"capacity,omitempty"`
	Timings   Timings   `bson:"timings" json:"timings"`
	Timezone  string    `bson:"timezone,omitempty" json:"timezone,omitempty"` // IANA name, e.g. "Europe/Paris"
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// StationSummary is the public view used on alternative cards.
type StationSummary struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Location string   `json:"location,omitempty"`
	GeoPoint GeoPoint `json:"geoPoint"`
}

func (s Station) Summary() StationSummary {
	return StationSummary{
		ID:       s.ID,
		Name:     s.Name,
		Location: s.Location,
		GeoPoint: s.GeoPoint,
	}
}
