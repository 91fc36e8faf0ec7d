package main

import (
	"context"
	"log"
	"net/http"

	"fuelogistics/internal/blob"
	"fuelogistics/internal/config"
	"fuelogistics/internal/controllers"
	"fuelogistics/internal/logger"
	"fuelogistics/internal/middleware"
	"fuelogistics/internal/routes"
	"fuelogistics/internal/store"
	"fuelogistics/internal/ws"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the database
	db := config.InitDB()

	// One hub per process owns every live dashboard connection.
	hub := ws.NewHub()

	// Blob storage is best-effort at boot: the API works without it, only
	// uploads fail until the bucket is reachable.
	blobs, err := blob.NewFromEnv()
	if err != nil {
		log.Fatalf("blob store config: %v", err)
	}
	if err := blobs.EnsureBucket(context.Background()); err != nil {
		log.Printf("blob bucket unavailable: %v", err)
	}

	tripStore := store.NewTripStore(db)
	userStore := store.NewUserStore(db)

	deps := routes.Deps{
		Auth:    controllers.NewAuthController(userStore),
		Trips:   controllers.NewTripController(tripStore, hub),
		Drivers: controllers.NewDriverController(store.NewDriverStore(db)),
		Trucks:  controllers.NewTruckController(store.NewTruckStore(db)),
		Reports: controllers.NewReportController(store.NewReportStore(db), tripStore),
		Uploads: controllers.NewUploadController(blobs),
		WS:      controllers.NewWebSocketController(hub),
	}

	// Setup Gin router
	r := routes.SetupRouter(deps)

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	addr := "0.0.0.0:" + config.GetEnv("PORT", "8080")
	log.Printf("🚀 Server running at %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
