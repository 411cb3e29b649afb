package main

import (
	"fmt"
	"os"

	"bagdrop/config"
	"bagdrop/database"
	reservationRepo "bagdrop/database/repository/reservation"
	stationRepo "bagdrop/database/repository/station"
	"bagdrop/services/capacity"
	"bagdrop/utils"

	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "bagdropctl",
		Short:         "Operator tools for the bagdrop capacity engine",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadConfig()
		},
	}

	root.AddCommand(newSeedCmd())
	root.AddCommand(newAvailabilityCmd())
	root.AddCommand(newHoursCmd())

	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openStores connects to Mongo and returns the repositories the commands share.
func openStores() (stationRepo.StationRepository, reservationRepo.ReservationRepository) {
	database.InitDB()
	return stationRepo.NewMongoStationRepo(), reservationRepo.NewMongoReservationRepo()
}

func newAvailabilityService() *capacity.DefaultAvailabilityService {
	stations, reservations := openStores()
	return &capacity.DefaultAvailabilityService{
		Stations:     stations,
		Reservations: reservations,
		Location:     config.DefaultLocation(),
		Logger:       utils.GetLogger(),
	}
}
