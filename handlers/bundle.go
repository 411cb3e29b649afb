package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Capacity and opening-hours endpoints
	CheckCapacityHandler  gin.HandlerFunc
	AlternativesHandler   gin.HandlerFunc
	ValidateTimingHandler gin.HandlerFunc

	// Reservation endpoints
	CreateReservationHandler gin.HandlerFunc

	// Station endpoints
	GetStationHandler     gin.HandlerFunc
	UpdateTimingsHandler  gin.HandlerFunc
	UpdateCapacityHandler gin.HandlerFunc
}

// NewHandlerBundle wires the struct handlers into a bundle for route registration.
func NewHandlerBundle(ah *AvailabilityHandler, rh *ReservationHandler, sh *StationHandler) *HandlerBundle {
	return &HandlerBundle{
		CheckCapacityHandler:     ah.CheckCapacityHandler,
		AlternativesHandler:      ah.AlternativesHandler,
		ValidateTimingHandler:    ah.ValidateTimingHandler,
		CreateReservationHandler: rh.CreateReservationHandler,
		GetStationHandler:        sh.GetStationHandler,
		UpdateTimingsHandler:     sh.UpdateTimingsHandler,
		UpdateCapacityHandler:    sh.UpdateCapacityHandler,
	}
}
