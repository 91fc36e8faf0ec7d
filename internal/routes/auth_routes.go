package routes

import (
	"github.com/gin-gonic/gin"

	"fuelogistics/internal/controllers"
	"fuelogistics/internal/middleware"
	"fuelogistics/internal/models"
)

func AuthRoutes(r *gin.Engine, ac *controllers.AuthController) {
	api := r.Group("/api")
	{
		api.POST("/register", ac.Register)
		api.POST("/login", ac.Login)
		api.POST("/logout", ac.Logout)
		api.GET("/user", middleware.RequireAuth(), ac.CurrentUser)
	}

	users := r.Group("/api/users")
	users.Use(middleware.RequireRole(models.RoleAdmin))
	{
		users.GET("", ac.ListUsers)
		users.DELETE("/:id", ac.DeleteUser)
	}
}
