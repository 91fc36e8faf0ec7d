package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/datatypes"

	"fuelogistics/internal/models"
	"fuelogistics/internal/store"
	"fuelogistics/internal/ws"
)

// maxQuantityLiters is the largest load a single tanker run may carry.
const maxQuantityLiters = 30000

// Broadcaster is the slice of the ws.Hub the trip handlers need: announce a
// mutation to every connected dashboard.
type Broadcaster interface {
	Broadcast(event ws.EventType, data interface{})
}

// TripController handles the trip REST surface. The hub is injected so every
// successful mutation can notify connected dashboards.
type TripController struct {
	trips *store.TripStore
	hub   Broadcaster
}

func NewTripController(trips *store.TripStore, hub Broadcaster) *TripController {
	return &TripController{trips: trips, hub: hub}
}

// --- Request bodies ---

type createTripInput struct {
	Driver         string              `json:"driver"`
	Truck          string              `json:"truck"`
	FuelType       string              `json:"fuel_type"`
	Origin         string              `json:"origin"`
	Destination    string              `json:"destination"`
	Status         string              `json:"status"`
	QuantityLiters int                 `json:"quantity_liters"`
	DepartureAt    time.Time           `json:"departure_at"`
	Attachments    []models.Attachment `json:"attachments"`
}

// validate collects every violation so the client can fix the whole form in
// one round trip. Departure must be strictly in the future; this rule applies
// at creation only.
func (in createTripInput) validate(now time.Time) []FieldError {
	var errs []FieldError
	for _, f := range []struct{ name, value string }{
		{"driver", in.Driver},
		{"truck", in.Truck},
		{"origin", in.Origin},
		{"destination", in.Destination},
	} {
		if f.value == "" {
			errs = append(errs, FieldError{Field: f.name, Message: f.name + " is required"})
		}
	}
	if !models.ValidFuelType(in.FuelType) {
		errs = append(errs, FieldError{Field: "fuel_type", Message: "fuel_type must be one of diesel, gasoline, natural_gas"})
	}
	if in.QuantityLiters < 1 || in.QuantityLiters > maxQuantityLiters {
		errs = append(errs, FieldError{Field: "quantity_liters", Message: fmt.Sprintf("quantity_liters must be between 1 and %d", maxQuantityLiters)})
	}
	if in.DepartureAt.IsZero() {
		errs = append(errs, FieldError{Field: "departure_at", Message: "departure_at is required"})
	} else if !in.DepartureAt.After(now) {
		errs = append(errs, FieldError{Field: "departure_at", Message: "departure_at must be in the future"})
	}
	if in.Status != "" && !models.ValidStatus(in.Status) {
		errs = append(errs, FieldError{Field: "status", Message: "status must be one of in_transit, completed, cancelled"})
	}
	return errs
}

type updateTripInput struct {
	Driver         *string              `json:"driver"`
	Truck          *string              `json:"truck"`
	FuelType       *string              `json:"fuel_type"`
	Origin         *string              `json:"origin"`
	Destination    *string              `json:"destination"`
	Status         *string              `json:"status"`
	QuantityLiters *int                 `json:"quantity_liters"`
	DepartureAt    *time.Time           `json:"departure_at"`
	Attachments    *[]models.Attachment `json:"attachments"`
}

// validate checks only the fields the client supplied. Departure is not
// re-checked against "now" on update.
func (in updateTripInput) validate() []FieldError {
	var errs []FieldError
	for _, f := range []struct {
		name  string
		value *string
	}{
		{"driver", in.Driver},
		{"truck", in.Truck},
		{"origin", in.Origin},
		{"destination", in.Destination},
	} {
		if f.value != nil && *f.value == "" {
			errs = append(errs, FieldError{Field: f.name, Message: f.name + " must not be empty"})
		}
	}
	if in.FuelType != nil && !models.ValidFuelType(*in.FuelType) {
		errs = append(errs, FieldError{Field: "fuel_type", Message: "fuel_type must be one of diesel, gasoline, natural_gas"})
	}
	if in.QuantityLiters != nil && (*in.QuantityLiters < 1 || *in.QuantityLiters > maxQuantityLiters) {
		errs = append(errs, FieldError{Field: "quantity_liters", Message: fmt.Sprintf("quantity_liters must be between 1 and %d", maxQuantityLiters)})
	}
	if in.Status != nil && !models.ValidStatus(*in.Status) {
		errs = append(errs, FieldError{Field: "status", Message: "status must be one of in_transit, completed, cancelled"})
	}
	return errs
}

// --- Handlers ---

// ListTrips returns the filtered, sorted trip list plus the dashboard stats
// derived from that same list.
// GET /api/trips?search=&status=&fuelType=&sortBy=&sortOrder=
func (tc *TripController) ListTrips(c *gin.Context) {
	filter := store.TripFilter{
		Search:    c.Query("search"),
		Status:    c.Query("status"),
		FuelType:  c.Query("fuelType"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}

	trips, err := tc.trips.List(filter)
	if err != nil {
		logrus.WithError(err).Error("Error fetching trips.")
		respondInternalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"trips": trips,
		"stats": store.ComputeStats(trips, time.Now()),
	})
}

// CreateTrip validates, persists and announces a new trip.
// POST /api/trips
func (tc *TripController) CreateTrip(c *gin.Context) {
	var input createTripInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadBody(c)
		return
	}
	if errs := input.validate(time.Now()); len(errs) > 0 {
		respondValidationError(c, errs)
		return
	}

	trip := models.Trip{
		Driver:         input.Driver,
		Truck:          input.Truck,
		FuelType:       input.FuelType,
		Origin:         input.Origin,
		Destination:    input.Destination,
		Status:         input.Status, // store defaults empty to in_transit
		QuantityLiters: input.QuantityLiters,
		DepartureAt:    input.DepartureAt,
	}
	if len(input.Attachments) > 0 {
		raw, err := json.Marshal(input.Attachments)
		if err != nil {
			respondBadBody(c)
			return
		}
		trip.Attachments = datatypes.JSON(raw)
	}

	if err := tc.trips.Create(&trip); err != nil {
		logrus.WithError(err).Error("Error creating trip.")
		respondInternalError(c)
		return
	}

	tc.hub.Broadcast(ws.TripCreated, trip)
	c.JSON(http.StatusCreated, trip)
}

// UpdateTrip applies a partial update. Missing ids are 404, not 400; moving a
// trip out of a terminal status is a validation error.
// PUT /api/trips/:id
func (tc *TripController) UpdateTrip(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input updateTripInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadBody(c)
		return
	}
	if errs := input.validate(); len(errs) > 0 {
		respondValidationError(c, errs)
		return
	}

	trip, err := tc.trips.GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Trip not found"})
			return
		}
		logrus.WithError(err).WithField("trip_id", id).Error("Error fetching trip for update.")
		respondInternalError(c)
		return
	}

	if input.Status != nil && *input.Status != trip.Status && models.TerminalStatus(trip.Status) {
		respondValidationError(c, []FieldError{{
			Field:   "status",
			Message: "trip is " + trip.Status + " and cannot change status",
		}})
		return
	}

	if input.Driver != nil {
		trip.Driver = *input.Driver
	}
	if input.Truck != nil {
		trip.Truck = *input.Truck
	}
	if input.FuelType != nil {
		trip.FuelType = *input.FuelType
	}
	if input.Origin != nil {
		trip.Origin = *input.Origin
	}
	if input.Destination != nil {
		trip.Destination = *input.Destination
	}
	if input.Status != nil {
		trip.Status = *input.Status
	}
	if input.QuantityLiters != nil {
		trip.QuantityLiters = *input.QuantityLiters
	}
	if input.DepartureAt != nil {
		trip.DepartureAt = *input.DepartureAt
	}
	if input.Attachments != nil {
		raw, err := json.Marshal(*input.Attachments)
		if err != nil {
			respondBadBody(c)
			return
		}
		trip.Attachments = datatypes.JSON(raw)
	}

	if err := tc.trips.Save(&trip); err != nil {
		logrus.WithError(err).WithField("trip_id", id).Error("Error updating trip.")
		respondInternalError(c)
		return
	}

	tc.hub.Broadcast(ws.TripUpdated, trip)
	c.JSON(http.StatusOK, trip)
}

// CancelTrip soft-cancels a trip and broadcasts TRIP_DELETED (the wire name
// kept for client compatibility). Cancelling an already-cancelled trip is a
// no-op and broadcasts nothing.
// DELETE /api/trips/:id
func (tc *TripController) CancelTrip(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	trip, changed, err := tc.trips.Cancel(id)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Trip not found"})
		case errors.Is(err, store.ErrTripCompleted):
			respondValidationError(c, []FieldError{{
				Field:   "status",
				Message: "completed trips cannot be cancelled",
			}})
		default:
			logrus.WithError(err).WithField("trip_id", id).Error("Error cancelling trip.")
			respondInternalError(c)
		}
		return
	}

	if changed {
		tc.hub.Broadcast(ws.TripDeleted, trip)
	}
	c.Status(http.StatusNoContent)
}
