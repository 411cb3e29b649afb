package handlers

import (
	"errors"
	"net/http"

	"bagdrop/models"
	"bagdrop/services/station"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type StationHandler struct {
	Service station.StationService
	Logger  *zap.Logger
}

func NewStationHandler(service station.StationService, logger *zap.Logger) *StationHandler {
	return &StationHandler{Service: service, Logger: logger}
}

func (h *StationHandler) GetStationHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	st, err := h.Service.GetStation(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, "Failed to fetch station", err)
		return
	}
	c.JSON(http.StatusOK, st)
}

type updateTimingsRequest struct {
	Timings  models.Timings `json:"timings"`
	// Omitted keeps the station's stored timezone.
	Timezone string         `json:"timezone"`
}

// UpdateTimingsHandler replaces a station's weekly hours after strict validation.
func (h *StationHandler) UpdateTimingsHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)

	var req updateTimingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, err)
		return
	}
	st, err := h.Service.UpdateTimings(c.Request.Context(), c.Param("id"), req.Timings, req.Timezone)
	if err != nil {
		respondError(c, logger, "Failed to update timings", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Timings updated", "station": st})
}

type updateCapacityRequest struct {
	// Zero means unlimited, so presence has to be checked explicitly.
	Capacity *int `json:"capacity"`
}

func (h *StationHandler) UpdateCapacityHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)

	var req updateCapacityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, err)
		return
	}
	if req.Capacity == nil {
		badRequest(c, logger, errors.New("capacity is required"))
		return
	}
	st, err := h.Service.UpdateCapacity(c.Request.Context(), c.Param("id"), *req.Capacity)
	if err != nil {
		respondError(c, logger, "Failed to update capacity", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Capacity updated", "station": st})
}
