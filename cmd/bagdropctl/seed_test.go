package main

import (
	"math/rand"
	"testing"
	"time"

	"bagdrop/services/schedule"
	"bagdrop/utils"
)

func TestDemoStations_WithinRadiusAndValid(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	stations := demoStations(rng, 48.8566, 2.3522, 5, 12)
	if len(stations) != 12 {
		t.Fatalf("expected 12 stations, got %d", len(stations))
	}
	for _, st := range stations {
		lat, lon, err := utils.LatLon(st.GeoPoint)
		if err != nil {
			t.Fatalf("%s: %v", st.Name, err)
		}
		if d := utils.Haversine(48.8566, 2.3522, lat, lon); d > 5.1 {
			t.Errorf("%s is %.2f km away, beyond the 5 km radius", st.Name, d)
		}
		if _, err := schedule.ParseTimings(st.Timings, time.UTC); err != nil {
			t.Errorf("%s: demo timings rejected: %v", st.Name, err)
		}
	}
}

func TestDemoStations_Empty(t *testing.T) {
	if got := demoStations(rand.New(rand.NewSource(1)), 0, 0, 5, 0); got != nil {
		t.Fatalf("expected no stations, got %d", len(got))
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := NewRootCmd()
	for _, name := range []string{"seed", "availability", "hours"} {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("expected subcommand %q, got %v (%v)", name, cmd, err)
		}
	}
}
