package booking

import (
	"context"
	"fmt"
	"time"

	reservationRepo "bagdrop/database/repository/reservation"
	"bagdrop/models"
	"bagdrop/services/capacity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	lockKeyPrefix  = "capacity-lock:"
	defaultLockTTL = 10 * time.Second
)

type ReserveRequest struct {
	StationID  string
	CustomerID string
	DropOff    time.Time
	PickUp     time.Time
	Quantity   int
}

// ReservationService commits reservations against live capacity.
type ReservationService interface {
	Reserve(ctx context.Context, req ReserveRequest) (*models.Reservation, error)
}

// DefaultReservationService serializes commits per station through Locker and
// re-runs the availability check while the lock is held.
type DefaultReservationService struct {
	Availability capacity.AvailabilityService
	Reservations reservationRepo.ReservationRepository
	Locker       Locker
	LockTTL      time.Duration
	Logger       *zap.Logger
}

func (s *DefaultReservationService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

func (s *DefaultReservationService) Reserve(ctx context.Context, req ReserveRequest) (*models.Reservation, error) {
	checkReq := capacity.Request{
		StationID: req.StationID,
		DropOff:   req.DropOff,
		PickUp:    req.PickUp,
		Quantity:  req.Quantity,
	}
	if err := checkReq.Validate(); err != nil {
		return nil, err
	}

	st, err := s.Availability.GetStation(ctx, req.StationID)
	if err != nil {
		return nil, err
	}

	sched := s.Availability.ScheduleFor(*st)
	if v := sched.Validate(req.DropOff); !v.IsValid {
		return nil, &HoursError{Field: "dropOff", Validation: v}
	}
	if v := sched.Validate(req.PickUp); !v.IsValid {
		return nil, &HoursError{Field: "pickUp", Validation: v}
	}

	ttl := s.LockTTL
	if ttl <= 0 {
		ttl = defaultLockTTL
	}
	key := lockKeyPrefix + st.ID
	token, ok, err := s.Locker.Acquire(ctx, key, ttl)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrStationBusy
	}
	defer func() {
		// Release even when the request context is already cancelled.
		relCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
		defer cancel()
		if err := s.Locker.Release(relCtx, key, token); err != nil {
			s.logger().Warn("failed to release capacity lock", zap.String("stationID", st.ID), zap.Error(err))
		}
	}()

	res, err := s.Availability.CheckStation(ctx, *st, checkReq)
	if err != nil {
		return nil, err
	}
	if !res.Available {
		return nil, &CapacityError{Result: res}
	}

	reservation := &models.Reservation{
		ID:         uuid.New().String(),
		StationID:  st.ID,
		CustomerID: req.CustomerID,
		DropOff:    req.DropOff,
		PickUp:     req.PickUp,
		Quantity:   req.Quantity,
		Status:     models.ReservationStatusConfirmed,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.Reservations.Create(ctx, reservation); err != nil {
		return nil, fmt.Errorf("failed to store reservation: %w", err)
	}

	s.logger().Info("reservation confirmed",
		zap.String("reservationID", reservation.ID),
		zap.String("stationID", st.ID),
		zap.Int("quantity", req.Quantity),
		zap.Int("projectedLoad", res.ProjectedLoad),
	)
	return reservation, nil
}
