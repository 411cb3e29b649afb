package stationRepo

import (
	"context"
	"fmt"
	"time"

	"bagdrop/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// FindNearby runs a $geoNear aggregation, which both filters by distance and sorts nearest first.
func (r *MongoStationRepo) FindNearby(ctx context.Context, criteria NearbyCriteria) ([]models.Station, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	query := bson.M{}
	if criteria.Status != "" {
		query["status"] = criteria.Status
	}
	if len(criteria.ExcludeIDs) > 0 {
		query["id"] = bson.M{"$nin": criteria.ExcludeIDs}
	}

	geoNear := bson.D{
		{Key: "near", Value: bson.D{
			{Key: "type", Value: "Point"},
			{Key: "coordinates", Value: bson.A{criteria.Longitude, criteria.Latitude}},
		}},
		{Key: "distanceField", Value: "distance"},
		{Key: "spherical", Value: true},
		{Key: "key", Value: "geoPoint"},
		{Key: "query", Value: query},
	}
	if criteria.MaxDistanceKm > 0 {
		geoNear = append(geoNear, bson.E{Key: "maxDistance", Value: criteria.MaxDistanceKm * 1000})
	}

	pipeline := mongo.Pipeline{{{Key: "$geoNear", Value: geoNear}}}
	if criteria.Limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: int64(criteria.Limit)}})
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("nearby station query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var stations []models.Station
	if err := cursor.All(ctx, &stations); err != nil {
		return nil, fmt.Errorf("failed to decode stations: %w", err)
	}
	return stations, nil
}
