package stationRepo

import (
	"context"
	"errors"
	"fmt"

	"bagdrop/database"
	"bagdrop/models"

	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("station not found")

// NearbyCriteria is the contract for the geospatial nearest-stations lookup.
type NearbyCriteria struct {
	// Center of the search.
	Latitude  float64
	Longitude float64
	// Maximum distance from the center, in km.
	MaxDistanceKm float64
	// Maximum number of stations returned.
	Limit int
	// Only stations with this status; empty means any.
	Status string
	// Stations left out of the results (always the origin, plus any the caller rejected).
	ExcludeIDs []string
}

// StationRepository defines station data access.
type StationRepository interface {
	// GetByID retrieves a station by its id; ErrNotFound when missing.
	GetByID(ctx context.Context, id string) (*models.Station, error)
	// FindNearby returns stations matching the criteria ordered by ascending distance.
	FindNearby(ctx context.Context, criteria NearbyCriteria) ([]models.Station, error)
	// Create inserts a new station document.
	Create(ctx context.Context, station *models.Station) error
	// UpdateTimings replaces a station's opening hours and timezone.
	UpdateTimings(ctx context.Context, id string, timings models.Timings, timezone string) error
	// UpdateCapacity sets the station's bag slot count (0 means unlimited).
	UpdateCapacity(ctx context.Context, id string, slots int) error
	// DeleteAll removes every station and reports how many were removed. Operator tooling only.
	DeleteAll(ctx context.Context) (int64, error)
}

// MongoStationRepo implements StationRepository using MongoDB.
type MongoStationRepo struct {
	coll *mongo.Collection
}

// NewMongoStationRepo creates a StationRepository on the "stations" collection.
func NewMongoStationRepo() StationRepository {
	repo := &MongoStationRepo{coll: database.DB().Collection("stations")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}
