package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"bagdrop/database"
	"bagdrop/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ReservationRepository is the read/write surface the capacity engine needs from reservation storage.
type ReservationRepository interface {
	// SumConfirmedLoad totals the quantity of confirmed reservations at a station whose
	// [dropOff, pickUp] interval intersects the given one (endpoints inclusive).
	SumConfirmedLoad(ctx context.Context, stationID string, dropOff, pickUp time.Time) (int, error)
	// ListOverlapping returns the confirmed reservations behind SumConfirmedLoad.
	ListOverlapping(ctx context.Context, stationID string, dropOff, pickUp time.Time) ([]models.Reservation, error)
	// Create inserts a new reservation.
	Create(ctx context.Context, r *models.Reservation) error
}

type mongoReservationRepo struct {
	coll *mongo.Collection
}

// NewMongoReservationRepo constructs a MongoDB ReservationRepository.
func NewMongoReservationRepo() ReservationRepository {
	repo := &mongoReservationRepo{coll: database.DB().Collection("reservations")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create reservation indexes: %v\n", err)
	}
	return repo
}
