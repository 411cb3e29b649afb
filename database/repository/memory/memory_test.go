package memory

import (
	"context"
	"testing"

	stationRepo "bagdrop/database/repository/station"
	"bagdrop/models"
)

func TestFindNearby_SkipsEveryExcludedID(t *testing.T) {
	stations := NewStations(
		models.Station{ID: "origin", GeoPoint: models.NewGeoPoint(48.8566, 2.3522)},
		models.Station{ID: "a", GeoPoint: models.NewGeoPoint(48.8656, 2.3522)},
		models.Station{ID: "b", GeoPoint: models.NewGeoPoint(48.8746, 2.3522)},
	)
	got, err := stations.FindNearby(context.Background(), stationRepo.NearbyCriteria{
		Latitude:   48.8566,
		Longitude:  2.3522,
		ExcludeIDs: []string{"origin", "a"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "b" {
		t.Fatalf("expected only b, got %v", got)
	}
}

func TestDeleteAll(t *testing.T) {
	stations := NewStations(models.Station{ID: "a"}, models.Station{ID: "b"})

	n, err := stations.DeleteAll(context.Background())
	if err != nil || n != 2 {
		t.Fatalf("expected 2 deleted, got %d (%v)", n, err)
	}
	if _, err := stations.GetByID(context.Background(), "a"); err != stationRepo.ErrNotFound {
		t.Fatalf("expected ErrNotFound after DeleteAll, got %v", err)
	}
	if n, _ := stations.DeleteAll(context.Background()); n != 0 {
		t.Fatalf("expected nothing left to delete, got %d", n)
	}
}
