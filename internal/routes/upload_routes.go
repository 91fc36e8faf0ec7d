package routes

import (
	"github.com/gin-gonic/gin"

	"fuelogistics/internal/controllers"
	"fuelogistics/internal/middleware"
)

func UploadRoutes(r *gin.Engine, uc *controllers.UploadController) {
	api := r.Group("/api")
	api.Use(middleware.RequireAuth())
	{
		api.POST("/upload", uc.UploadFile)
		api.POST("/upload/multiple", uc.UploadFiles)
		api.DELETE("/files/:fileName", uc.DeleteFile)
		api.GET("/files/:fileName/url", uc.GetFileURL)
	}
}
