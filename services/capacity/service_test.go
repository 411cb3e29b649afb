package capacity_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"bagdrop/database/repository/memory"
	"bagdrop/models"
	"bagdrop/services/capacity"
)

var base = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC) // Monday

func newService(stations []models.Station, reservations ...models.Reservation) *capacity.DefaultAvailabilityService {
	return &capacity.DefaultAvailabilityService{
		Stations:     memory.NewStations(stations...),
		Reservations: memory.NewReservations(reservations...),
		Location:     time.UTC,
	}
}

func confirmed(stationID string, from, to time.Time, qty int) models.Reservation {
	return models.Reservation{
		ID:        stationID + from.String(),
		StationID: stationID,
		DropOff:   from,
		PickUp:    to,
		Quantity:  qty,
		Status:    models.ReservationStatusConfirmed,
	}
}

func TestCheckAvailability_StationNotFound(t *testing.T) {
	svc := newService(nil)
	_, err := svc.CheckAvailability(context.Background(), capacity.Request{
		StationID: "missing", DropOff: base, PickUp: base.Add(time.Hour), Quantity: 1,
	})
	if !errors.Is(err, capacity.ErrStationNotFound) {
		t.Fatalf("expected ErrStationNotFound, got %v", err)
	}
}

func TestCheckAvailability_RejectsMalformedRequest(t *testing.T) {
	svc := newService([]models.Station{{ID: "s1", Capacity: 10}})
	cases := []capacity.Request{
		{StationID: "s1", DropOff: base, PickUp: base.Add(time.Hour), Quantity: 0},
		{StationID: "s1", DropOff: base, PickUp: base, Quantity: 1},
		{StationID: "s1", DropOff: base.Add(time.Hour), PickUp: base, Quantity: 1},
		{DropOff: base, PickUp: base.Add(time.Hour), Quantity: 1},
	}
	for i, req := range cases {
		if _, err := svc.CheckAvailability(context.Background(), req); !errors.Is(err, capacity.ErrInvalidRequest) {
			t.Errorf("case %d: expected ErrInvalidRequest, got %v", i, err)
		}
	}
}

func TestCheckAvailability_CountsTouchingReservations(t *testing.T) {
	svc := newService(
		[]models.Station{{ID: "s1", Capacity: 20}},
		confirmed("s1", base.Add(-3*time.Hour), base, 10),                  // ends exactly at drop-off
		confirmed("s1", base.Add(4*time.Hour), base.Add(6*time.Hour), 6),   // starts exactly at pick-up
		confirmed("s1", base.Add(5*time.Hour), base.Add(8*time.Hour), 100), // after the window
	)
	res, err := svc.CheckAvailability(context.Background(), capacity.Request{
		StationID: "s1", DropOff: base, PickUp: base.Add(4 * time.Hour), Quantity: 3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.CurrentLoad != 16 {
		t.Fatalf("expected current load 16, got %d", res.CurrentLoad)
	}
	if res.Available {
		t.Fatal("expected 16+3 over a buffer of 18 to be rejected")
	}
	if res.LoadPercentage != 80 || res.Status != models.LoadLimited {
		t.Fatalf("expected 80%% limited, got %d%% %s", res.LoadPercentage, res.Status)
	}
}

func TestCheckAvailability_UnlimitedStillReportsLoad(t *testing.T) {
	svc := newService(
		[]models.Station{{ID: "u", Capacity: 0}},
		confirmed("u", base, base.Add(time.Hour), 500),
	)
	res, err := svc.CheckAvailability(context.Background(), capacity.Request{
		StationID: "u", DropOff: base, PickUp: base.Add(time.Hour), Quantity: 50,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Unlimited || !res.Available || res.LoadPercentage != 0 {
		t.Fatalf("expected unlimited available at 0%%, got %+v", res)
	}
	if res.CurrentLoad != 500 {
		t.Fatalf("expected current load 500, got %d", res.CurrentLoad)
	}
}

func TestCheckAvailability_PropagatesStoreErrors(t *testing.T) {
	reservations := memory.NewReservations()
	reservations.LoadErr["s1"] = errors.New("connection reset")
	svc := &capacity.DefaultAvailabilityService{
		Stations:     memory.NewStations(models.Station{ID: "s1", Capacity: 5}),
		Reservations: reservations,
	}
	_, err := svc.CheckAvailability(context.Background(), capacity.Request{
		StationID: "s1", DropOff: base, PickUp: base.Add(time.Hour), Quantity: 1,
	})
	if err == nil || errors.Is(err, capacity.ErrStationNotFound) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}

func TestValidateInstant_UsesStationTimezone(t *testing.T) {
	st := models.Station{
		ID:       "paris",
		Timezone: "Europe/Paris",
		Timings: models.Timings{
			Monday: &models.DaySchedule{Open: "09:00", Close: "18:00"},
		},
	}
	svc := newService([]models.Station{st})

	// 08:30 UTC is 09:30 in Paris during winter time.
	v, err := svc.ValidateInstant(context.Background(), "paris", time.Date(2026, 1, 26, 8, 30, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.IsValid {
		t.Fatalf("expected valid instant, got %+v", v)
	}

	v, err = svc.ValidateInstant(context.Background(), "paris", time.Date(2026, 1, 26, 7, 30, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.IsValid || len(v.Suggestions) != 1 {
		t.Fatalf("expected one same-day suggestion, got %+v", v)
	}
}

func TestValidateInstant_StationNotFound(t *testing.T) {
	svc := newService(nil)
	if _, err := svc.ValidateInstant(context.Background(), "nope", base); !errors.Is(err, capacity.ErrStationNotFound) {
		t.Fatalf("expected ErrStationNotFound, got %v", err)
	}
}
