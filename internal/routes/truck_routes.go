package routes

import (
	"github.com/gin-gonic/gin"

	"fuelogistics/internal/controllers"
	"fuelogistics/internal/middleware"
)

func TruckRoutes(r *gin.Engine, tc *controllers.TruckController) {
	trucks := r.Group("/api/trucks")
	trucks.Use(middleware.RequireAuth())
	{
		trucks.GET("", tc.ListTrucks)
		trucks.GET("/:id", tc.GetTruck)
		trucks.POST("", tc.CreateTruck)
		trucks.PUT("/:id", tc.UpdateTruck)
		trucks.DELETE("/:id", tc.DeleteTruck)
	}
}
