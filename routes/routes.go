package routes

import (
	"net/http"
	"time"

	"bagdrop/handlers"
	"bagdrop/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":       "ok",
			"message":      "Hi, I'm bagdrop",
			"dependencies": utils.GetHealthStatus(),
		})
	})
}

// RegisterCapacityRoutes registers the availability, alternatives and timing checks.
func RegisterCapacityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/capacity/check", hb.CheckCapacityHandler)
		api.POST("/capacity/alternatives", hb.AlternativesHandler)
		api.POST("/timings/validate", hb.ValidateTimingHandler)
	}
}

// RegisterReservationRoutes registers the reservation commit path.
func RegisterReservationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/reservations", hb.CreateReservationHandler)
}

// RegisterStationRoutes registers station data entry endpoints.
func RegisterStationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/stations")
	{
		api.GET("/:id", hb.GetStationHandler)
		api.PUT("/:id/timings", hb.UpdateTimingsHandler)
		api.PUT("/:id/capacity", hb.UpdateCapacityHandler)
	}
}

// RegisterRoutes centralizes registration of all endpoints and CORS.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterCapacityRoutes(r, hb)
	RegisterReservationRoutes(r, hb)
	RegisterStationRoutes(r, hb)
}
