package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"fuelogistics/internal/config"
	"fuelogistics/internal/controllers"
	"fuelogistics/internal/models"
	"fuelogistics/internal/store"
	"fuelogistics/internal/ws"
)

// recordingBroadcaster captures broadcast events instead of writing to
// sockets, so tests can assert exactly which events fired.
type recordingBroadcaster struct {
	events []ws.EventType
}

func (r *recordingBroadcaster) Broadcast(event ws.EventType, _ interface{}) {
	r.events = append(r.events, event)
}

var _ controllers.Broadcaster = (*recordingBroadcaster)(nil)

func newTestRouter(t *testing.T) (*gin.Engine, *store.TripStore, *recordingBroadcaster) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := filepath.Join(t.TempDir(), "fuelogistics_test.db")
	db, err := gorm.Open(sqlite.Dialector{DriverName: "sqlite", DSN: dbPath}, &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	trips := store.NewTripStore(db)
	hub := &recordingBroadcaster{}
	tc := controllers.NewTripController(trips, hub)

	// Routes registered without the auth middleware; token handling is
	// covered by the middleware's own tests.
	r := gin.New()
	r.GET("/api/trips", tc.ListTrips)
	r.POST("/api/trips", tc.CreateTrip)
	r.PUT("/api/trips/:id", tc.UpdateTrip)
	r.DELETE("/api/trips/:id", tc.CancelTrip)

	return r, trips, hub
}

func jsonBody(t *testing.T, v interface{}) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, jsonBody(t, body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func validTripBody() map[string]interface{} {
	return map[string]interface{}{
		"driver":          "Carlos Mendoza",
		"truck":           "ABC-123",
		"fuel_type":       "diesel",
		"origin":          "Refinery North",
		"destination":     "Station 42",
		"quantity_liters": 100,
		"departure_at":    time.Now().Add(time.Hour).Format(time.RFC3339),
	}
}

type validationResponse struct {
	Message string `json:"message"`
	Errors  []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
}

func violatedFields(t *testing.T, rec *httptest.ResponseRecorder) []string {
	t.Helper()
	var resp validationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	fields := make([]string, 0, len(resp.Errors))
	for _, e := range resp.Errors {
		fields = append(fields, e.Field)
	}
	return fields
}

func TestCreateTripReturnsCreatedWithDefaultStatus(t *testing.T) {
	r, _, hub := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/trips", validTripBody())

	require.Equal(t, http.StatusCreated, rec.Code)
	var trip models.Trip
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &trip))
	assert.Equal(t, models.StatusInTransit, trip.Status)
	assert.NotZero(t, trip.ID)
	assert.Equal(t, []ws.EventType{ws.TripCreated}, hub.events)
}

func TestCreateTripRejectsQuantityAboveLimit(t *testing.T) {
	r, trips, hub := newTestRouter(t)

	body := validTripBody()
	body["quantity_liters"] = 30001
	rec := doJSON(t, r, http.MethodPost, "/api/trips", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, violatedFields(t, rec), "quantity_liters")

	// Nothing was persisted and nothing was announced.
	stored, err := trips.List(store.TripFilter{})
	require.NoError(t, err)
	assert.Empty(t, stored)
	assert.Empty(t, hub.events)
}

func TestCreateTripRejectsPastDeparture(t *testing.T) {
	r, trips, _ := newTestRouter(t)

	body := validTripBody()
	body["departure_at"] = time.Now().Add(-time.Hour).Format(time.RFC3339)
	rec := doJSON(t, r, http.MethodPost, "/api/trips", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, violatedFields(t, rec), "departure_at")

	stored, err := trips.List(store.TripFilter{})
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestCreateTripEnumeratesEveryViolation(t *testing.T) {
	r, _, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/trips", map[string]interface{}{
		"driver":          "",
		"truck":           "ABC-123",
		"fuel_type":       "kerosene",
		"origin":          "Refinery North",
		"destination":     "Station 42",
		"quantity_liters": 0,
		"departure_at":    time.Now().Add(-time.Minute).Format(time.RFC3339),
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	fields := violatedFields(t, rec)
	assert.ElementsMatch(t, []string{"driver", "fuel_type", "quantity_liters", "departure_at"}, fields)
}

func TestUpdateTripAppliesPartialFields(t *testing.T) {
	r, trips, hub := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/trips", validTripBody())
	require.Equal(t, http.StatusCreated, rec.Code)
	var created models.Trip
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/trips/%d", created.ID), map[string]interface{}{
		"status": "completed",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	updated, err := trips.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, updated.Status)
	// Other fields untouched.
	assert.Equal(t, created.Driver, updated.Driver)
	assert.Equal(t, created.QuantityLiters, updated.QuantityLiters)
	assert.Equal(t, []ws.EventType{ws.TripCreated, ws.TripUpdated}, hub.events)
}

func TestUpdateMissingTripIsNotFoundNotValidation(t *testing.T) {
	r, _, hub := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPut, "/api/trips/424242", map[string]interface{}{
		"driver": "Someone Else",
	})

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotContains(t, rec.Body.String(), "errors")
	assert.Empty(t, hub.events)
}

func TestUpdateCannotLeaveTerminalStatus(t *testing.T) {
	r, trips, hub := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/trips", validTripBody())
	require.Equal(t, http.StatusCreated, rec.Code)
	var created models.Trip
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/trips/%d", created.ID), nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/trips/%d", created.ID), map[string]interface{}{
		"status": "in_transit",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, violatedFields(t, rec), "status")

	got, err := trips.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, got.Status)
	assert.Equal(t, []ws.EventType{ws.TripCreated, ws.TripDeleted}, hub.events)
}

func TestCancelTripBroadcastsDeletedOnce(t *testing.T) {
	r, trips, hub := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/trips", validTripBody())
	require.Equal(t, http.StatusCreated, rec.Code)
	var created models.Trip
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/trips/%d", created.ID), nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	got, err := trips.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, got.Status)
	assert.Equal(t, []ws.EventType{ws.TripCreated, ws.TripDeleted}, hub.events)

	// Cancelling again is a no-op: still 204, no second broadcast.
	rec = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/trips/%d", created.ID), nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []ws.EventType{ws.TripCreated, ws.TripDeleted}, hub.events)
}

func TestMalformedTripIDIsNotFound(t *testing.T) {
	r, _, hub := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPut, "/api/trips/not-a-number", map[string]interface{}{
		"driver": "Someone Else",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, r, http.MethodDelete, "/api/trips/not-a-number", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, hub.events)
}

func TestCancelMissingTripIsNotFound(t *testing.T) {
	r, _, hub := newTestRouter(t)

	rec := doJSON(t, r, http.MethodDelete, "/api/trips/424242", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, hub.events)
}

func TestListTripsReturnsTripsAndStats(t *testing.T) {
	r, _, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/trips", validTripBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	body := validTripBody()
	body["truck"] = "DEF-456"
	rec = doJSON(t, r, http.MethodPost, "/api/trips", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/api/trips", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Trips []models.Trip   `json:"trips"`
		Stats store.TripStats `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Trips, 2)
	assert.Equal(t, 2, resp.Stats.ActiveTrips)
	assert.Equal(t, 2, resp.Stats.TrucksInRoute)

	// A cancelled trip stays in the list but leaves the active counters.
	rec = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/trips/%d", resp.Trips[0].ID), nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/api/trips", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Trips, 2)
	assert.Equal(t, 1, resp.Stats.ActiveTrips)
	assert.Equal(t, 1, resp.Stats.TrucksInRoute)
}

func TestListTripsFiltersViaQueryParams(t *testing.T) {
	r, _, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/trips", validTripBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	body := validTripBody()
	body["fuel_type"] = "gasoline"
	body["driver"] = "Luisa Fernanda"
	rec = doJSON(t, r, http.MethodPost, "/api/trips", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/api/trips?fuelType=gasoline", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Trips []models.Trip `json:"trips"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Trips, 1)
	assert.Equal(t, "Luisa Fernanda", resp.Trips[0].Driver)

	rec = doJSON(t, r, http.MethodGet, "/api/trips?search=luisa", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Trips, 1)
	assert.Equal(t, "Luisa Fernanda", resp.Trips[0].Driver)
}
