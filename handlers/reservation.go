package handlers

import (
	"errors"
	"net/http"
	"time"

	"bagdrop/models"
	"bagdrop/services/alternatives"
	"bagdrop/services/booking"
	"bagdrop/services/capacity"
	"bagdrop/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ReservationHandler struct {
	Service      booking.ReservationService
	Availability capacity.AvailabilityService
	Finder       alternatives.Finder
	Logger       *zap.Logger
}

func NewReservationHandler(service booking.ReservationService, availability capacity.AvailabilityService, finder alternatives.Finder, logger *zap.Logger) *ReservationHandler {
	return &ReservationHandler{Service: service, Availability: availability, Finder: finder, Logger: logger}
}

type reserveRequest struct {
	StationID  string    `json:"stationId" binding:"required"`
	CustomerID string    `json:"customerId"`
	DropOff    time.Time `json:"dropOff" binding:"required"`
	PickUp     time.Time `json:"pickUp" binding:"required"`
	Quantity   int       `json:"quantity" binding:"required"`
}

// CreateReservationHandler commits a reservation. A full station answers 409 with
// nearby alternatives; an out-of-hours instant answers 409 with suggestions.
func (h *ReservationHandler) CreateReservationHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)

	var req reserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, err)
		return
	}

	reservation, err := h.Service.Reserve(c.Request.Context(), booking.ReserveRequest{
		StationID:  req.StationID,
		CustomerID: req.CustomerID,
		DropOff:    req.DropOff,
		PickUp:     req.PickUp,
		Quantity:   req.Quantity,
	})

	var capErr *booking.CapacityError
	var hoursErr *booking.HoursError
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, gin.H{"reservation": reservation})
	case errors.As(err, &capErr):
		c.JSON(http.StatusConflict, gin.H{
			"error":        "Station is at capacity for this window",
			"message":      err.Error(),
			"availability": capErr.Result,
			"alternatives": h.alternativesFor(c, logger, req),
		})
	case errors.As(err, &hoursErr):
		c.JSON(http.StatusConflict, gin.H{
			"error":      "Requested time is outside operating hours",
			"message":    err.Error(),
			"field":      hoursErr.Field,
			"validation": hoursErr.Validation,
		})
	default:
		respondError(c, logger, "Failed to create reservation", err)
	}
}

// alternativesFor never fails the response; an empty list is returned instead.
func (h *ReservationHandler) alternativesFor(c *gin.Context, logger *zap.Logger, req reserveRequest) []models.AlternativeStation {
	if h.Finder == nil || h.Availability == nil {
		return []models.AlternativeStation{}
	}
	origin, err := h.originOf(c, req.StationID)
	if err != nil {
		logger.Warn("cannot locate origin station for alternatives", zap.String("stationID", req.StationID), zap.Error(err))
		return []models.AlternativeStation{}
	}
	alts, err := h.Finder.FindAlternatives(c.Request.Context(), alternatives.Query{
		Latitude:          origin[0],
		Longitude:         origin[1],
		ExcludeStationIDs: []string{req.StationID},
		DropOff:           req.DropOff,
		PickUp:            req.PickUp,
		Quantity:          req.Quantity,
	})
	if err != nil {
		logger.Warn("alternative search failed", zap.String("stationID", req.StationID), zap.Error(err))
		return []models.AlternativeStation{}
	}
	return alts
}

func (h *ReservationHandler) originOf(c *gin.Context, stationID string) ([2]float64, error) {
	st, err := h.Availability.GetStation(c.Request.Context(), stationID)
	if err != nil {
		return [2]float64{}, err
	}
	lat, lon, err := utils.LatLon(st.GeoPoint)
	if err != nil {
		return [2]float64{}, err
	}
	return [2]float64{lat, lon}, nil
}
