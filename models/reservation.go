package models

import "time"

const (
	ReservationStatusConfirmed = "confirmed"
	ReservationStatusPending   = "pending"
	ReservationStatusCancelled = "cancelled"
)

// Reservation is a customer's booking of bag slots at a station.
// Only confirmed reservations count toward a station's load.
type Reservation struct {
	ID         string    `bson:"id" json:"id"`
	StationID  string    `bson:"stationId" json:"stationId"`
	CustomerID string    `bson:"customerId,omitempty" json:"customerId,omitempty"`
	DropOff    time.Time `bson:"dropOff" json:"dropOff"`
	PickUp     time.Time `bson:"pickUp" json:"pickUp"`
	Quantity   int       `bson:"quantity" json:"quantity"` // bag count
	Status     string    `bson:"status" json:"status"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}
