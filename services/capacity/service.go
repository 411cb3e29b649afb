package capacity

import (
	"context"
	"errors"
	"fmt"
	"time"

	reservationRepo "bagdrop/database/repository/reservation"
	stationRepo "bagdrop/database/repository/station"
	"bagdrop/models"
	"bagdrop/services/schedule"

	"go.uber.org/zap"
)

// Request asks whether Quantity bags fit at a station for [DropOff, PickUp].
type Request struct {
	StationID string
	DropOff   time.Time
	PickUp    time.Time
	Quantity  int
}

func (r Request) Window() Window {
	return Window{DropOff: r.DropOff, PickUp: r.PickUp}
}

// Validate reports malformed requests; callers are expected to check before calling the service.
func (r Request) Validate() error {
	if r.StationID == "" {
		return fmt.Errorf("%w: station id is required", ErrInvalidRequest)
	}
	if !r.Window().Valid() {
		return fmt.Errorf("%w: drop-off must be before pick-up", ErrInvalidRequest)
	}
	if r.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrInvalidRequest)
	}
	return nil
}

// AvailabilityService answers capacity and opening-hours questions for one station.
type AvailabilityService interface {
	CheckAvailability(ctx context.Context, req Request) (models.AvailabilityResult, error)
	// CheckStation is CheckAvailability for a station document already in hand.
	CheckStation(ctx context.Context, station models.Station, req Request) (models.AvailabilityResult, error)
	ValidateInstant(ctx context.Context, stationID string, instant time.Time) (models.TimingValidation, error)
	GetStation(ctx context.Context, stationID string) (*models.Station, error)
	ScheduleFor(st models.Station) schedule.Schedule
}

// DefaultAvailabilityService reads live reservation state on every call; results are never cached.
type DefaultAvailabilityService struct {
	Stations     stationRepo.StationRepository
	Reservations reservationRepo.ReservationRepository
	// Location used for stations without their own timezone.
	Location *time.Location
	Logger   *zap.Logger
}

func (s *DefaultAvailabilityService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

func (s *DefaultAvailabilityService) GetStation(ctx context.Context, stationID string) (*models.Station, error) {
	st, err := s.Stations.GetByID(ctx, stationID)
	if err != nil {
		if errors.Is(err, stationRepo.ErrNotFound) {
			return nil, ErrStationNotFound
		}
		return nil, fmt.Errorf("failed to load station %s: %w", stationID, err)
	}
	return st, nil
}

func (s *DefaultAvailabilityService) CheckAvailability(ctx context.Context, req Request) (models.AvailabilityResult, error) {
	if err := req.Validate(); err != nil {
		return models.AvailabilityResult{}, err
	}
	st, err := s.GetStation(ctx, req.StationID)
	if err != nil {
		return models.AvailabilityResult{}, err
	}
	return s.CheckStation(ctx, *st, req)
}

func (s *DefaultAvailabilityService) CheckStation(ctx context.Context, station models.Station, req Request) (models.AvailabilityResult, error) {
	req.StationID = station.ID
	if err := req.Validate(); err != nil {
		return models.AvailabilityResult{}, err
	}

	load, err := s.Reservations.SumConfirmedLoad(ctx, station.ID, req.DropOff, req.PickUp)
	if err != nil {
		return models.AvailabilityResult{}, fmt.Errorf("failed to sum load for station %s: %w", station.ID, err)
	}

	res := Evaluate(FromSlots(station.Capacity), load, req.Quantity)
	res.StationID = station.ID

	s.logger().Debug("capacity evaluated",
		zap.String("stationID", station.ID),
		zap.Int("currentLoad", res.CurrentLoad),
		zap.Int("requested", req.Quantity),
		zap.Bool("unlimited", res.Unlimited),
		zap.Bool("available", res.Available),
		zap.String("status", string(res.Status)),
	)
	return res, nil
}

// ValidateInstant only fails when the station cannot be loaded; an out-of-hours
// instant is reported through the result.
func (s *DefaultAvailabilityService) ValidateInstant(ctx context.Context, stationID string, instant time.Time) (models.TimingValidation, error) {
	st, err := s.GetStation(ctx, stationID)
	if err != nil {
		return models.TimingValidation{}, err
	}
	return s.ScheduleFor(*st).Validate(instant), nil
}

// ScheduleFor builds the read-path schedule of a station.
func (s *DefaultAvailabilityService) ScheduleFor(st models.Station) schedule.Schedule {
	return schedule.ForStation(st, s.Location, s.logger())
}
