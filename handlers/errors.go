package handlers

import (
	"errors"
	"net/http"

	"bagdrop/services/booking"
	"bagdrop/services/capacity"
	"bagdrop/services/schedule"
	"bagdrop/services/station"
	"bagdrop/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// statusFor maps service errors onto HTTP statuses; anything unknown is a 500.
func statusFor(err error) int {
	var coordErr *utils.CoordinateError
	switch {
	case errors.Is(err, capacity.ErrStationNotFound):
		return http.StatusNotFound
	case errors.Is(err, capacity.ErrInvalidRequest),
		errors.Is(err, schedule.ErrInvalidTimings),
		errors.Is(err, station.ErrInvalidStation),
		errors.As(err, &coordErr):
		return http.StatusBadRequest
	case errors.Is(err, booking.ErrCapacityExceeded),
		errors.Is(err, booking.ErrOutsideOperatingHours),
		errors.Is(err, booking.ErrStationBusy):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func respondError(c *gin.Context, logger *zap.Logger, label string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error(label, zap.Error(err))
		utils.JSONError(c, status, label, "An unexpected error occurred. Please try again later.")
		return
	}
	logger.Debug(label, zap.Int("status", status), zap.Error(err))
	c.JSON(status, gin.H{"error": label, "message": err.Error()})
}

func badRequest(c *gin.Context, logger *zap.Logger, err error) {
	logger.Debug("Invalid request payload", zap.Error(err))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
}
