package alternatives

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	stationRepo "bagdrop/database/repository/station"
	"bagdrop/models"
	"bagdrop/services/capacity"
	"bagdrop/utils"

	"go.uber.org/zap"
)

const (
	DefaultRadiusKm       = 50
	DefaultCandidateLimit = 10
	DefaultResultLimit    = 3
)

// Query describes the booking that did not fit and where to look instead.
type Query struct {
	Latitude          float64
	Longitude         float64
	ExcludeStationIDs []string
	DropOff           time.Time
	PickUp            time.Time
	Quantity          int
}

// Finder locates nearby stations with room for a booking.
type Finder interface {
	FindAlternatives(ctx context.Context, q Query) ([]models.AlternativeStation, error)
}

// DefaultAlternativeFinder implements Finder on top of the station geo index and the availability service.
type DefaultAlternativeFinder struct {
	Stations     stationRepo.StationRepository
	Availability capacity.AvailabilityService
	Logger       *zap.Logger

	RadiusKm       float64
	CandidateLimit int
	ResultLimit    int
}

func (f *DefaultAlternativeFinder) logger() *zap.Logger {
	if f.Logger == nil {
		return zap.NewNop()
	}
	return f.Logger
}

func (f *DefaultAlternativeFinder) limits() (float64, int, int) {
	radius, candidates, results := f.RadiusKm, f.CandidateLimit, f.ResultLimit
	if radius <= 0 {
		radius = DefaultRadiusKm
	}
	if candidates <= 0 {
		candidates = DefaultCandidateLimit
	}
	if results <= 0 {
		results = DefaultResultLimit
	}
	return radius, candidates, results
}

// FindAlternatives returns at most ResultLimit available stations, nearest first.
// A candidate that cannot be evaluated is skipped; a failed geo query or a done
// context aborts the search.
func (f *DefaultAlternativeFinder) FindAlternatives(ctx context.Context, q Query) ([]models.AlternativeStation, error) {
	if err := utils.ValidateCoordinatePair(q.Latitude, q.Longitude); err != nil {
		return nil, err
	}
	if q.Quantity <= 0 || !(capacity.Window{DropOff: q.DropOff, PickUp: q.PickUp}).Valid() {
		return nil, fmt.Errorf("%w: a valid window and positive quantity are required", capacity.ErrInvalidRequest)
	}

	radius, candidateLimit, resultLimit := f.limits()
	candidates, err := f.Stations.FindNearby(ctx, stationRepo.NearbyCriteria{
		Latitude:      q.Latitude,
		Longitude:     q.Longitude,
		MaxDistanceKm: radius,
		Limit:         candidateLimit,
		Status:        models.StationStatusActive,
		ExcludeIDs:    q.ExcludeStationIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("nearby station search failed: %w", err)
	}

	// Each slot is written by exactly one goroutine, so geo order survives the fan-out.
	checked := make([]*models.AlternativeStation, len(candidates))
	var wg sync.WaitGroup
	for i, st := range candidates {
		if slices.Contains(q.ExcludeStationIDs, st.ID) {
			continue
		}
		wg.Add(1)
		go func(i int, st models.Station) {
			defer wg.Done()
			alt, err := f.evaluate(ctx, q, st)
			if err != nil {
				f.logger().Warn("skipping alternative candidate",
					zap.String("stationID", st.ID), zap.Error(err))
				return
			}
			checked[i] = alt
		}(i, st)
	}
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]models.AlternativeStation, 0, resultLimit)
	for _, alt := range checked {
		if alt == nil || !alt.Availability.Available {
			continue
		}
		out = append(out, *alt)
		if len(out) == resultLimit {
			break
		}
	}

	f.logger().Debug("alternatives evaluated",
		zap.Int("candidates", len(candidates)),
		zap.Int("returned", len(out)),
	)
	return out, nil
}

func (f *DefaultAlternativeFinder) evaluate(ctx context.Context, q Query, st models.Station) (*models.AlternativeStation, error) {
	lat, lon, err := utils.LatLon(st.GeoPoint)
	if err != nil {
		return nil, err
	}
	res, err := f.Availability.CheckStation(ctx, st, capacity.Request{
		StationID: st.ID,
		DropOff:   q.DropOff,
		PickUp:    q.PickUp,
		Quantity:  q.Quantity,
	})
	if err != nil {
		return nil, err
	}
	return &models.AlternativeStation{
		Station:      st.Summary(),
		DistanceKm:   utils.RoundKm(utils.Haversine(q.Latitude, q.Longitude, lat, lon)),
		Availability: res,
	}, nil
}
