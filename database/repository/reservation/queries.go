package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"bagdrop/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// overlapFilter matches confirmed reservations with dropOff <= pickUp and pickUp >= dropOff.
func overlapFilter(stationID string, dropOff, pickUp time.Time) bson.M {
	return bson.M{
		"stationId": stationID,
		"status":    models.ReservationStatusConfirmed,
		"dropOff":   bson.M{"$lte": pickUp},
		"pickUp":    bson.M{"$gte": dropOff},
	}
}

func (r *mongoReservationRepo) SumConfirmedLoad(ctx context.Context, stationID string, dropOff, pickUp time.Time) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: overlapFilter(stationID, dropOff, pickUp)}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$quantity"},
		}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("aggregation error: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total int `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("error decoding aggregation result: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}

func (r *mongoReservationRepo) ListOverlapping(ctx context.Context, stationID string, dropOff, pickUp time.Time) ([]models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "dropOff", Value: 1}})
	cursor, err := r.coll.Find(ctx, overlapFilter(stationID, dropOff, pickUp), opts)
	if err != nil {
		return nil, fmt.Errorf("error finding overlapping reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var reservations []models.Reservation
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, fmt.Errorf("error decoding reservations: %w", err)
	}
	return reservations, nil
}

func (r *mongoReservationRepo) Create(ctx context.Context, res *models.Reservation) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, res); err != nil {
		return fmt.Errorf("failed to create reservation: %w", err)
	}
	return nil
}
