package handlers

import (
	"errors"
	"net/http"
	"time"

	"bagdrop/services/alternatives"
	"bagdrop/services/capacity"
	"bagdrop/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler serves the read-only capacity and opening-hours checks.
type AvailabilityHandler struct {
	Availability capacity.AvailabilityService
	Finder       alternatives.Finder
	Logger       *zap.Logger
}

func NewAvailabilityHandler(availability capacity.AvailabilityService, finder alternatives.Finder, logger *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{Availability: availability, Finder: finder, Logger: logger}
}

type capacityCheckRequest struct {
	StationID string    `json:"stationId" binding:"required"`
	DropOff   time.Time `json:"dropOff" binding:"required"`
	PickUp    time.Time `json:"pickUp" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required"`
}

// CheckCapacityHandler answers whether a quantity of bags fits at a station for a window.
func (h *AvailabilityHandler) CheckCapacityHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)

	var req capacityCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, err)
		return
	}

	res, err := h.Availability.CheckAvailability(c.Request.Context(), capacity.Request{
		StationID: req.StationID,
		DropOff:   req.DropOff,
		PickUp:    req.PickUp,
		Quantity:  req.Quantity,
	})
	if err != nil {
		respondError(c, logger, "Failed to check capacity", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

type alternativesRequest struct {
	// Either the origin station or a raw point must be given.
	StationID        string    `json:"stationId"`
	Latitude         *float64  `json:"latitude"`
	Longitude        *float64  `json:"longitude"`
	ExcludeStationID string    `json:"excludeStationId"`
	DropOff          time.Time `json:"dropOff" binding:"required"`
	PickUp           time.Time `json:"pickUp" binding:"required"`
	Quantity         int       `json:"quantity" binding:"required"`
}

// AlternativesHandler lists up to three nearby stations that can take the booking.
func (h *AvailabilityHandler) AlternativesHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)

	var req alternativesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, err)
		return
	}

	q := alternatives.Query{
		DropOff:  req.DropOff,
		PickUp:   req.PickUp,
		Quantity: req.Quantity,
	}
	if req.ExcludeStationID != "" {
		q.ExcludeStationIDs = append(q.ExcludeStationIDs, req.ExcludeStationID)
	}
	switch {
	case req.StationID != "":
		st, err := h.Availability.GetStation(c.Request.Context(), req.StationID)
		if err != nil {
			respondError(c, logger, "Failed to load origin station", err)
			return
		}
		lat, lon, err := utils.LatLon(st.GeoPoint)
		if err != nil {
			respondError(c, logger, "Origin station has no usable location", err)
			return
		}
		// The origin never comes back as its own alternative.
		q.Latitude, q.Longitude = lat, lon
		q.ExcludeStationIDs = append(q.ExcludeStationIDs, st.ID)
	case req.Latitude != nil && req.Longitude != nil:
		q.Latitude, q.Longitude = *req.Latitude, *req.Longitude
	default:
		badRequest(c, logger, errors.New("stationId or latitude/longitude is required"))
		return
	}

	alts, err := h.Finder.FindAlternatives(c.Request.Context(), q)
	if err != nil {
		respondError(c, logger, "Failed to find alternative stations", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"alternatives": alts})
}

type validateTimingRequest struct {
	StationID string    `json:"stationId" binding:"required"`
	Instant   time.Time `json:"instant" binding:"required"`
}

// ValidateTimingHandler checks an instant against the station's opening hours.
// An out-of-hours instant is a 200 with isValid=false and suggestions.
func (h *AvailabilityHandler) ValidateTimingHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)

	var req validateTimingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, err)
		return
	}

	v, err := h.Availability.ValidateInstant(c.Request.Context(), req.StationID, req.Instant)
	if err != nil {
		respondError(c, logger, "Failed to validate timing", err)
		return
	}
	c.JSON(http.StatusOK, v)
}
