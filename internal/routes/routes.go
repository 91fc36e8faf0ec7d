package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"fuelogistics/internal/controllers"
	"fuelogistics/internal/middleware"
)

// Deps carries the constructed controllers into route registration, so no
// handler reaches for package-level state.
type Deps struct {
	Auth    *controllers.AuthController
	Trips   *controllers.TripController
	Drivers *controllers.DriverController
	Trucks  *controllers.TruckController
	Reports *controllers.ReportController
	Uploads *controllers.UploadController
	WS      *controllers.WebSocketController
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	// Request logging middleware
	r.Use(ginlog.SetLogger())

	AuthRoutes(r, d.Auth)
	TripRoutes(r, d.Trips)
	DriverRoutes(r, d.Drivers)
	TruckRoutes(r, d.Trucks)
	ReportRoutes(r, d.Reports)
	UploadRoutes(r, d.Uploads)
	WebSocketRoutes(r, d.WS)

	return r
}
