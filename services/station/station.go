package station

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	stationRepo "bagdrop/database/repository/station"
	"bagdrop/models"
	"bagdrop/services/capacity"
	"bagdrop/services/schedule"
	"bagdrop/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrInvalidStation = errors.New("invalid station data")

// StationService is the partner-facing data entry path. Everything written here
// passes the strict timings parser, so the read path rarely meets bad data.
type StationService interface {
	GetStation(ctx context.Context, id string) (*models.Station, error)
	CreateStation(ctx context.Context, st models.Station) (*models.Station, error)
	UpdateTimings(ctx context.Context, id string, timings models.Timings, timezone string) (*models.Station, error)
	UpdateCapacity(ctx context.Context, id string, slots int) (*models.Station, error)
}

type DefaultStationService struct {
	Repo   stationRepo.StationRepository
	Logger *zap.Logger
	// Location is the zone a station without its own timezone is evaluated in; nil means UTC.
	Location *time.Location
}

func NewDefaultStationService(repo stationRepo.StationRepository, logger *zap.Logger) (*DefaultStationService, error) {
	if repo == nil {
		return nil, fmt.Errorf("station service initialization error: repository is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultStationService{Repo: repo, Logger: logger}, nil
}

func (s *DefaultStationService) GetStation(ctx context.Context, id string) (*models.Station, error) {
	st, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, stationRepo.ErrNotFound) {
			return nil, capacity.ErrStationNotFound
		}
		return nil, err
	}
	return st, nil
}

// CreateStation validates and stores a new station. An empty id is generated and
// an empty status defaults to active.
func (s *DefaultStationService) CreateStation(ctx context.Context, st models.Station) (*models.Station, error) {
	st.Name = strings.TrimSpace(st.Name)
	if st.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidStation)
	}
	if _, _, err := utils.LatLon(st.GeoPoint); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStation, err)
	}
	if st.Capacity < 0 {
		return nil, fmt.Errorf("%w: capacity cannot be negative", ErrInvalidStation)
	}
	loc, err := s.loadTimezone(st.Timezone)
	if err != nil {
		return nil, err
	}
	if _, err := schedule.ParseTimings(st.Timings, loc); err != nil {
		return nil, err
	}

	if st.ID == "" {
		st.ID = uuid.New().String()
	}
	if st.Status == "" {
		st.Status = models.StationStatusActive
	}
	st.GeoPoint.Type = "Point"
	if err := s.Repo.Create(ctx, &st); err != nil {
		return nil, err
	}
	s.Logger.Info("station created", zap.String("stationID", st.ID), zap.String("name", st.Name))
	return &st, nil
}

// UpdateTimings replaces the weekly hours. An empty timezone keeps the one already stored.
func (s *DefaultStationService) UpdateTimings(ctx context.Context, id string, timings models.Timings, timezone string) (*models.Station, error) {
	current, err := s.GetStation(ctx, id)
	if err != nil {
		return nil, err
	}
	if timezone == "" {
		timezone = current.Timezone
	}
	loc, err := s.loadTimezone(timezone)
	if err != nil {
		return nil, err
	}
	sched, err := schedule.ParseTimings(timings, loc)
	if err != nil {
		return nil, err
	}
	if !sched.HasOpenDay() {
		s.Logger.Warn("station timings never open; every instant will be rejected", zap.String("stationID", id))
	}
	if err := s.Repo.UpdateTimings(ctx, id, timings, timezone); err != nil {
		if errors.Is(err, stationRepo.ErrNotFound) {
			return nil, capacity.ErrStationNotFound
		}
		return nil, err
	}
	s.Logger.Info("station timings updated", zap.String("stationID", id), zap.Bool("is24Hours", timings.Is24Hours))
	return s.GetStation(ctx, id)
}

// UpdateCapacity sets the slot count; zero switches the station to unlimited.
func (s *DefaultStationService) UpdateCapacity(ctx context.Context, id string, slots int) (*models.Station, error) {
	if slots < 0 {
		return nil, fmt.Errorf("%w: capacity cannot be negative", ErrInvalidStation)
	}
	if err := s.Repo.UpdateCapacity(ctx, id, slots); err != nil {
		if errors.Is(err, stationRepo.ErrNotFound) {
			return nil, capacity.ErrStationNotFound
		}
		return nil, err
	}
	s.Logger.Info("station capacity updated", zap.String("stationID", id), zap.Int("slots", slots))
	return s.GetStation(ctx, id)
}

// loadTimezone accepts an empty name, which leaves the station on the service default.
func (s *DefaultStationService) loadTimezone(name string) (*time.Location, error) {
	if name == "" {
		if s.Location == nil {
			return time.UTC, nil
		}
		return s.Location, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown timezone %q", ErrInvalidStation, name)
	}
	return loc, nil
}
