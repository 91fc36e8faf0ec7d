package routes

import (
	"github.com/gin-gonic/gin"

	"fuelogistics/internal/controllers"
	"fuelogistics/internal/middleware"
)

func DriverRoutes(r *gin.Engine, dc *controllers.DriverController) {
	drivers := r.Group("/api/drivers")
	drivers.Use(middleware.RequireAuth())
	{
		drivers.GET("", dc.ListDrivers)
		drivers.GET("/:id", dc.GetDriver)
		drivers.POST("", dc.CreateDriver)
		drivers.PUT("/:id", dc.UpdateDriver)
		drivers.DELETE("/:id", dc.DeleteDriver)
	}
}
