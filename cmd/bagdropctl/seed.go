package main

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	"bagdrop/config"
	"bagdrop/database"
	"bagdrop/models"
	"bagdrop/services/station"
	"bagdrop/utils"

	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	var lat, lon, maxKm float64
	var count int
	var seed int64
	var clear bool

	c := &cobra.Command{
		Use:   "seed",
		Short: "Insert demo stations spread around a point",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := utils.ValidateCoordinatePair(lat, lon); err != nil {
				return err
			}
			stations, _ := openStores()
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			defer database.Close(ctx)

			if clear {
				n, err := stations.DeleteAll(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(os.Stdout, "cleared %d stations\n", n)
			}

			svc, err := station.NewDefaultStationService(stations, utils.GetLogger())
			if err != nil {
				return err
			}
			svc.Location = config.DefaultLocation()
			rng := rand.New(rand.NewSource(seed))
			for _, st := range demoStations(rng, lat, lon, maxKm, count) {
				created, err := svc.CreateStation(ctx, st)
				if err != nil {
					return fmt.Errorf("failed to seed %s: %w", st.Name, err)
				}
				fmt.Fprintf(os.Stdout, "seeded %s (%s)\n", created.ID, created.Name)
			}
			return nil
		},
	}

	// Defaults to central Paris.
	c.Flags().Float64Var(&lat, "lat", 48.8566, "center latitude")
	c.Flags().Float64Var(&lon, "lon", 2.3522, "center longitude")
	c.Flags().Float64Var(&maxKm, "radius", 5, "furthest station distance in km")
	c.Flags().IntVar(&count, "count", 12, "number of stations")
	c.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed for station placement")
	c.Flags().BoolVar(&clear, "clear", false, "delete existing stations first")
	return c
}

// demoStations spreads count stations linearly between ~0.01 km and maxKm from the
// center at random bearings, cycling through the hour and capacity profiles below.
func demoStations(rng *rand.Rand, lat, lon, maxKm float64, count int) []models.Station {
	if count <= 0 {
		return nil
	}
	const minKm = 0.01
	spacing := 0.0
	if count > 1 {
		spacing = (maxKm - minKm) / float64(count-1)
	}

	capacities := []int{0, 10, 20, 40}
	out := make([]models.Station, 0, count)
	for i := 0; i < count; i++ {
		distanceKm := maxKm - spacing*float64(i)
		angle := rng.Float64() * 2 * math.Pi

		// 1 degree of latitude is ~111.2 km; longitude shrinks with cos(lat).
		dLat := distanceKm / 111.2 * math.Sin(angle)
		dLon := distanceKm / (111.2 * math.Cos(lat*math.Pi/180)) * math.Cos(angle)

		out = append(out, models.Station{
			Name:     fmt.Sprintf("Demo Station %d", i+1),
			Location: fmt.Sprintf("%.1f km from center", distanceKm),
			GeoPoint: models.NewGeoPoint(lat+dLat, lon+dLon),
			Capacity: capacities[i%len(capacities)],
			Timings:  demoTimings(i),
			Status:   models.StationStatusActive,
		})
	}
	return out
}

func demoTimings(i int) models.Timings {
	switch i % 3 {
	case 0:
		return models.Timings{Is24Hours: true}
	case 1:
		var t models.Timings
		for _, wd := range []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday} {
			t.SetDay(wd, &models.DaySchedule{Open: "08:00", Close: "20:00"})
		}
		t.SetDay(time.Saturday, &models.DaySchedule{Open: "10:00", Close: "16:00"})
		t.SetDay(time.Sunday, &models.DaySchedule{Closed: true})
		return t
	default:
		// Night venue open across midnight.
		var t models.Timings
		for wd := time.Sunday; wd <= time.Saturday; wd++ {
			t.SetDay(wd, &models.DaySchedule{Open: "18:00", Close: "02:00"})
		}
		return t
	}
}
