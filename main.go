package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bagdrop/config"
	"bagdrop/database"
	reservationRepo "bagdrop/database/repository/reservation"
	stationRepo "bagdrop/database/repository/station"
	"bagdrop/handlers"
	"bagdrop/middleware"
	"bagdrop/routes"
	"bagdrop/services/alternatives"
	"bagdrop/services/booking"
	"bagdrop/services/capacity"
	"bagdrop/services/station"
	"bagdrop/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	database.InitDB()
	utils.InitRedis()

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	utils.StartHealthMonitor(monitorCtx, utils.GetLockClient(), database.MongoClient)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	// repositories.
	stations := stationRepo.NewMongoStationRepo()
	reservations := reservationRepo.NewMongoReservationRepo()

	// services.
	availabilityService := &capacity.DefaultAvailabilityService{
		Stations:     stations,
		Reservations: reservations,
		Location:     config.DefaultLocation(),
		Logger:       logger.Named("capacity"),
	}
	finder := &alternatives.DefaultAlternativeFinder{
		Stations:       stations,
		Availability:   availabilityService,
		Logger:         logger.Named("alternatives"),
		RadiusKm:       config.AppConfig.AlternativesRadiusKm,
		CandidateLimit: config.AppConfig.AlternativesCandidateLimit,
		ResultLimit:    config.AppConfig.AlternativesResultLimit,
	}
	reservationService := &booking.DefaultReservationService{
		Availability: availabilityService,
		Reservations: reservations,
		Locker:       booking.NewRedisLocker(utils.GetLockClient()),
		LockTTL:      config.CapacityLockTTL(),
		Logger:       logger.Named("booking"),
	}
	stationService, err := station.NewDefaultStationService(stations, logger.Named("station"))
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	stationService.Location = config.DefaultLocation()

	// Assemble the handler bundle.
	handlerBundle := handlers.NewHandlerBundle(
		handlers.NewAvailabilityHandler(availabilityService, finder, logger),
		handlers.NewReservationHandler(reservationService, availabilityService, finder, logger),
		handlers.NewStationHandler(stationService, logger),
	)

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	stopMonitor()
	if err := database.Close(ctx); err != nil {
		logger.Sugar().Warnf("main: failed to disconnect from MongoDB: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
