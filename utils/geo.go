package utils

import (
	"fmt"
	"math"

	"bagdrop/models"
)

const earthRadiusKm = 6371

// Haversine returns the great-circle distance in km between two lat/lon points.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * (math.Pi / 180)
	dLon := (lon2 - lon1) * (math.Pi / 180)
	lat1Rad := lat1 * (math.Pi / 180)
	lat2Rad := lat2 * (math.Pi / 180)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// CoordinateError reports an unusable latitude or longitude.
type CoordinateError struct {
	Field   string
	Value   float64
	Message string
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("%s: %s (value: %.6f)", e.Field, e.Message, e.Value)
}

// ValidateCoordinatePair checks a latitude/longitude pair for NaN, infinities and range.
func ValidateCoordinatePair(lat, lon float64) error {
	if err := validateAxis("latitude", lat, 90); err != nil {
		return err
	}
	return validateAxis("longitude", lon, 180)
}

func validateAxis(field string, v, limit float64) error {
	switch {
	case math.IsNaN(v):
		return &CoordinateError{Field: field, Value: v, Message: "NaN is not allowed"}
	case math.IsInf(v, 0):
		return &CoordinateError{Field: field, Value: v, Message: "infinite value is not allowed"}
	case v < -limit || v > limit:
		return &CoordinateError{Field: field, Value: v, Message: fmt.Sprintf("must be between %.0f and %.0f", -limit, limit)}
	}
	return nil
}

// LatLon extracts (lat, lon) from a GeoJSON point stored as [lon, lat].
func LatLon(p models.GeoPoint) (float64, float64, error) {
	if len(p.Coordinates) != 2 {
		return 0, 0, &CoordinateError{Field: "coordinates", Value: float64(len(p.Coordinates)), Message: "expected [longitude, latitude]"}
	}
	lon, lat := p.Coordinates[0], p.Coordinates[1]
	if err := ValidateCoordinatePair(lat, lon); err != nil {
		return 0, 0, err
	}
	return lat, lon, nil
}

// RoundKm rounds a distance to one decimal place.
func RoundKm(km float64) float64 {
	return math.Round(km*10) / 10
}
