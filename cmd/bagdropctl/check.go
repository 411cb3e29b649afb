package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"bagdrop/database"
	"bagdrop/services/capacity"

	"github.com/spf13/cobra"
)

func newAvailabilityCmd() *cobra.Command {
	var stationID, dropOff, pickUp string
	var quantity int
	var list bool

	c := &cobra.Command{
		Use:   "availability",
		Short: "Check whether a station can take a number of bags for a window",
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := time.Parse(time.RFC3339, dropOff)
			if err != nil {
				return fmt.Errorf("invalid --drop-off: %w", err)
			}
			to, err := time.Parse(time.RFC3339, pickUp)
			if err != nil {
				return fmt.Errorf("invalid --pick-up: %w", err)
			}

			svc := newAvailabilityService()
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			defer database.Close(ctx)

			res, err := svc.CheckAvailability(ctx, capacity.Request{
				StationID: stationID,
				DropOff:   from,
				PickUp:    to,
				Quantity:  quantity,
			})
			if err != nil {
				return err
			}
			if !list {
				return printJSON(res)
			}
			overlapping, err := svc.Reservations.ListOverlapping(ctx, stationID, from, to)
			if err != nil {
				return err
			}
			return printJSON(map[string]any{"availability": res, "reservations": overlapping})
		},
	}

	c.Flags().StringVar(&stationID, "station", "", "station id")
	c.Flags().StringVar(&dropOff, "drop-off", "", "drop-off instant (RFC3339)")
	c.Flags().StringVar(&pickUp, "pick-up", "", "pick-up instant (RFC3339)")
	c.Flags().IntVar(&quantity, "quantity", 1, "number of bags")
	c.Flags().BoolVar(&list, "list", false, "also print the overlapping confirmed reservations")
	_ = c.MarkFlagRequired("station")
	_ = c.MarkFlagRequired("drop-off")
	_ = c.MarkFlagRequired("pick-up")
	return c
}

func newHoursCmd() *cobra.Command {
	var stationID, at string

	c := &cobra.Command{
		Use:   "hours",
		Short: "Check an instant against a station's opening hours and print suggestions",
		RunE: func(cmd *cobra.Command, args []string) error {
			instant := time.Now()
			if at != "" {
				parsed, err := time.Parse(time.RFC3339, at)
				if err != nil {
					return fmt.Errorf("invalid --at: %w", err)
				}
				instant = parsed
			}

			svc := newAvailabilityService()
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			defer database.Close(ctx)

			v, err := svc.ValidateInstant(ctx, stationID, instant)
			if err != nil {
				return err
			}
			return printJSON(v)
		},
	}

	c.Flags().StringVar(&stationID, "station", "", "station id")
	c.Flags().StringVar(&at, "at", "", "instant to check (RFC3339, default now)")
	_ = c.MarkFlagRequired("station")
	return c
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
