package routes

import (
	"github.com/gin-gonic/gin"

	"fuelogistics/internal/controllers"
	"fuelogistics/internal/middleware"
)

func TripRoutes(r *gin.Engine, tc *controllers.TripController) {
	trips := r.Group("/api/trips")
	trips.Use(middleware.RequireAuth())
	{
		trips.GET("", tc.ListTrips)
		trips.POST("", tc.CreateTrip)
		trips.PUT("/:id", tc.UpdateTrip)
		trips.DELETE("/:id", tc.CancelTrip)
	}
}
