// Package memory holds in-process station and reservation stores with the same
// semantics as the Mongo repositories. Handlers and services are tested against it.
package memory

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	reservationRepo "bagdrop/database/repository/reservation"
	stationRepo "bagdrop/database/repository/station"
	"bagdrop/models"
	"bagdrop/services/capacity"
	"bagdrop/utils"
)

type Stations struct {
	mu       sync.RWMutex
	stations map[string]models.Station
	// FindErr, when set, is returned by FindNearby.
	FindErr error
}

var _ stationRepo.StationRepository = (*Stations)(nil)

func NewStations(stations ...models.Station) *Stations {
	s := &Stations{stations: make(map[string]models.Station)}
	for _, st := range stations {
		s.stations[st.ID] = st
	}
	return s
}

func (s *Stations) GetByID(_ context.Context, id string) (*models.Station, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.stations[id]
	if !ok {
		return nil, stationRepo.ErrNotFound
	}
	return &st, nil
}

// FindNearby mirrors the $geoNear query: distance filter, status filter, exclusion, nearest first.
// Stations whose coordinates cannot be read are skipped, as Mongo's 2dsphere index would never hold them.
func (s *Stations) FindNearby(_ context.Context, c stationRepo.NearbyCriteria) ([]models.Station, error) {
	if s.FindErr != nil {
		return nil, s.FindErr
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	type hit struct {
		st   models.Station
		dist float64
	}
	var hits []hit
	for _, st := range s.stations {
		if c.Status != "" && st.Status != c.Status {
			continue
		}
		if slices.Contains(c.ExcludeIDs, st.ID) {
			continue
		}
		lat, lon, err := utils.LatLon(st.GeoPoint)
		if err != nil {
			continue
		}
		d := utils.Haversine(c.Latitude, c.Longitude, lat, lon)
		if c.MaxDistanceKm > 0 && d > c.MaxDistanceKm {
			continue
		}
		hits = append(hits, hit{st: st, dist: d})
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].dist < hits[j].dist })
	if c.Limit > 0 && len(hits) > c.Limit {
		hits = hits[:c.Limit]
	}
	out := make([]models.Station, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.st)
	}
	return out, nil
}

func (s *Stations) Create(_ context.Context, st *models.Station) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stations[st.ID] = *st
	return nil
}

func (s *Stations) UpdateTimings(_ context.Context, id string, timings models.Timings, timezone string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.stations[id]
	if !ok {
		return stationRepo.ErrNotFound
	}
	st.Timings = timings
	st.Timezone = timezone
	s.stations[id] = st
	return nil
}

func (s *Stations) UpdateCapacity(_ context.Context, id string, slots int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.stations[id]
	if !ok {
		return stationRepo.ErrNotFound
	}
	st.Capacity = slots
	s.stations[id] = st
	return nil
}

func (s *Stations) DeleteAll(context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := int64(len(s.stations))
	s.stations = make(map[string]models.Station)
	return n, nil
}

type Reservations struct {
	mu           sync.RWMutex
	reservations []models.Reservation
	// LoadErr, when set for a station id, is returned by SumConfirmedLoad for that station.
	LoadErr map[string]error
}

var _ reservationRepo.ReservationRepository = (*Reservations)(nil)

func NewReservations(reservations ...models.Reservation) *Reservations {
	return &Reservations{reservations: reservations, LoadErr: map[string]error{}}
}

func (r *Reservations) SumConfirmedLoad(_ context.Context, stationID string, dropOff, pickUp time.Time) (int, error) {
	if err := r.LoadErr[stationID]; err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return capacity.SumLoad(r.reservations, stationID, capacity.Window{DropOff: dropOff, PickUp: pickUp}), nil
}

func (r *Reservations) ListOverlapping(_ context.Context, stationID string, dropOff, pickUp time.Time) ([]models.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w := capacity.Window{DropOff: dropOff, PickUp: pickUp}
	var out []models.Reservation
	for _, res := range r.reservations {
		if res.StationID == stationID && res.Status == models.ReservationStatusConfirmed &&
			capacity.Overlaps(capacity.Window{DropOff: res.DropOff, PickUp: res.PickUp}, w) {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *Reservations) Create(_ context.Context, res *models.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reservations = append(r.reservations, *res)
	return nil
}

// All returns a copy of every stored reservation.
func (r *Reservations) All() []models.Reservation {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.Reservation(nil), r.reservations...)
}
