package stationRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bagdrop/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *MongoStationRepo) GetByID(ctx context.Context, id string) (*models.Station, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var station models.Station
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&station); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch station with id %s: %w", id, err)
	}
	return &station, nil
}

func (r *MongoStationRepo) Create(ctx context.Context, station *models.Station) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	if station.CreatedAt.IsZero() {
		station.CreatedAt = now
	}
	station.UpdatedAt = now
	if _, err := r.coll.InsertOne(ctx, station); err != nil {
		return fmt.Errorf("failed to create station: %w", err)
	}
	return nil
}

func (r *MongoStationRepo) UpdateTimings(ctx context.Context, id string, timings models.Timings, timezone string) error {
	return r.updateSet(ctx, id, bson.M{
		"timings":  timings,
		"timezone": timezone,
	})
}

func (r *MongoStationRepo) UpdateCapacity(ctx context.Context, id string, slots int) error {
	return r.updateSet(ctx, id, bson.M{"capacity": slots})
}

func (r *MongoStationRepo) DeleteAll(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	result, err := r.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to delete stations: %w", err)
	}
	return result.DeletedCount, nil
}

func (r *MongoStationRepo) updateSet(ctx context.Context, id string, fields bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	fields["updatedAt"] = time.Now().UTC()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update station with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
