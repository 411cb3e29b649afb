package booking

import (
	"errors"
	"fmt"

	"bagdrop/models"
)

var (
	ErrCapacityExceeded      = errors.New("station capacity exceeded")
	ErrOutsideOperatingHours = errors.New("outside station operating hours")
	ErrStationBusy           = errors.New("station is busy, try again")
)

// CapacityError carries the availability result that rejected the reservation.
type CapacityError struct {
	Result models.AvailabilityResult
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s: projected load %d over buffer %d", ErrCapacityExceeded, e.Result.ProjectedLoad, e.Result.BufferCeiling)
}

func (e *CapacityError) Unwrap() error { return ErrCapacityExceeded }

// HoursError reports which end of the window falls outside opening hours.
type HoursError struct {
	Field      string // "dropOff" or "pickUp"
	Validation models.TimingValidation
}

func (e *HoursError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Validation.Message)
}

func (e *HoursError) Unwrap() error { return ErrOutsideOperatingHours }
