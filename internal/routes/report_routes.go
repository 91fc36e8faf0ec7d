package routes

import (
	"github.com/gin-gonic/gin"

	"fuelogistics/internal/controllers"
	"fuelogistics/internal/middleware"
)

func ReportRoutes(r *gin.Engine, rc *controllers.ReportController) {
	reports := r.Group("/api/reports")
	reports.Use(middleware.RequireAuth())
	{
		reports.GET("", rc.ListReports)
		reports.POST("", rc.CreateReport)
	}
}
