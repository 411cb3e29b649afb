package models

import "time"

// LoadStatus is the informational tier shown next to a station's load.
type LoadStatus string

const (
	LoadAvailable LoadStatus = "available"
	LoadLimited   LoadStatus = "limited"
	LoadCritical  LoadStatus = "critical"
	LoadFull      LoadStatus = "full"
)

// AvailabilityResult is recomputed on every request and never stored.
type AvailabilityResult struct {
	StationID      string     `json:"stationId"`
	Unlimited      bool       `json:"unlimited"`
	Capacity       int        `json:"capacity,omitempty"`
	CurrentLoad    int        `json:"currentLoad"`
	BufferCeiling  int        `json:"bufferCeiling,omitempty"`
	Requested      int        `json:"requested"`
	ProjectedLoad  int        `json:"projectedLoad"`
	Remaining      int        `json:"remaining,omitempty"`
	Available      bool       `json:"available"`
	LoadPercentage int        `json:"loadPercentage"`
	Status         LoadStatus `json:"status"`
}

// Suggestion is a one-click alternative instant offered when a requested time is outside opening hours.
type Suggestion struct {
	Label    string    `json:"label"`
	DateTime time.Time `json:"dateTime"`
}

type TimingValidation struct {
	IsValid     bool         `json:"isValid"`
	DayName     string       `json:"dayName"`
	Closed      bool         `json:"closed,omitempty"`
	OpenTime    string       `json:"openTime,omitempty"`
	CloseTime   string       `json:"closeTime,omitempty"`
	Message     string       `json:"message,omitempty"`
	NoValidTime bool         `json:"noValidTime,omitempty"`
	Suggestions []Suggestion `json:"suggestions"`
}

// AlternativeStation is a nearby station that can take the requested booking.
type AlternativeStation struct {
	Station      StationSummary     `json:"station"`
	DistanceKm   float64            `json:"distanceKm"`
	Availability AvailabilityResult `json:"availability"`
}
