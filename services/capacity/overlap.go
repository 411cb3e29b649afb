package capacity

import (
	"time"

	"bagdrop/models"
)

// Window is the closed storage interval [DropOff, PickUp].
type Window struct {
	DropOff time.Time
	PickUp  time.Time
}

func (w Window) Valid() bool {
	return !w.DropOff.IsZero() && !w.PickUp.IsZero() && w.DropOff.Before(w.PickUp)
}

// Overlaps uses closed intervals: a reservation ending exactly when another starts
// still counts, so handover instants are never double-booked.
func Overlaps(a, b Window) bool {
	return !a.DropOff.After(b.PickUp) && !a.PickUp.Before(b.DropOff)
}

// SumLoad adds up the quantity of confirmed reservations at stationID overlapping w.
func SumLoad(reservations []models.Reservation, stationID string, w Window) int {
	total := 0
	for _, r := range reservations {
		if r.StationID != stationID || r.Status != models.ReservationStatusConfirmed {
			continue
		}
		if Overlaps(Window{DropOff: r.DropOff, PickUp: r.PickUp}, w) {
			total += r.Quantity
		}
	}
	return total
}
