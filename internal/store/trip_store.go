package store

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"fuelogistics/internal/models"
)

// TripFilter narrows and orders the trip list. Zero values mean "no filter".
type TripFilter struct {
	Search    string // case-insensitive substring over driver, truck, origin, destination
	Status    string // exact match
	FuelType  string // exact match
	SortBy    string // must be in tripSortColumns, otherwise the default applies
	SortOrder string // "asc" or "desc"; anything else means desc
}

// tripSortColumns is the allow-list of sortable columns. Client-supplied sort
// fields never reach SQL directly; anything not in this map falls back to the
// default departure ordering.
var tripSortColumns = map[string]string{
	"driver":          "driver",
	"truck":           "truck",
	"fuel_type":       "fuel_type",
	"origin":          "origin",
	"destination":     "destination",
	"status":          "status",
	"quantity_liters": "quantity_liters",
	"departure_at":    "departure_at",
	"created_at":      "created_at",
	"updated_at":      "updated_at",
	"id":              "id",
}

const defaultTripSort = "departure_at"

type TripStore struct {
	db *gorm.DB
}

func NewTripStore(db *gorm.DB) *TripStore {
	return &TripStore{db: db}
}

// List returns the trips matching filter in the requested order. Ties on the
// sort column break by id ascending so the order is deterministic.
func (s *TripStore) List(filter TripFilter) ([]models.Trip, error) {
	q := s.db.Model(&models.Trip{})

	if filter.Search != "" {
		needle := "%" + strings.ToLower(filter.Search) + "%"
		q = q.Where(
			"LOWER(driver) LIKE ? OR LOWER(truck) LIKE ? OR LOWER(origin) LIKE ? OR LOWER(destination) LIKE ?",
			needle, needle, needle, needle,
		)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.FuelType != "" {
		q = q.Where("fuel_type = ?", filter.FuelType)
	}

	column, ok := tripSortColumns[filter.SortBy]
	if !ok {
		column = defaultTripSort
	}
	direction := "DESC"
	if filter.SortOrder == "asc" {
		direction = "ASC"
	}

	trips := make([]models.Trip, 0)
	if err := q.Order(column + " " + direction).Order("id ASC").Find(&trips).Error; err != nil {
		return nil, err
	}
	return trips, nil
}

// GetByID fetches one trip, mapping a missing row to ErrNotFound.
func (s *TripStore) GetByID(id uint) (models.Trip, error) {
	var trip models.Trip
	if err := s.db.First(&trip, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Trip{}, ErrNotFound
		}
		return models.Trip{}, err
	}
	return trip, nil
}

// Create persists a new trip. Status defaults to in_transit when unset.
func (s *TripStore) Create(trip *models.Trip) error {
	if trip.Status == "" {
		trip.Status = models.StatusInTransit
	}
	return s.db.Create(trip).Error
}

// Save writes back a fetched-and-modified trip. GORM refreshes updated_at.
func (s *TripStore) Save(trip *models.Trip) error {
	return s.db.Save(trip).Error
}

// Cancel soft-cancels a trip: the row stays, status becomes cancelled and
// updated_at is refreshed. The returned bool is false when the trip was
// already cancelled (a no-op, not an error). Cancelling a completed trip
// returns ErrTripCompleted since completed is terminal.
func (s *TripStore) Cancel(id uint) (models.Trip, bool, error) {
	trip, err := s.GetByID(id)
	if err != nil {
		return models.Trip{}, false, err
	}
	switch trip.Status {
	case models.StatusCancelled:
		return trip, false, nil
	case models.StatusCompleted:
		return models.Trip{}, false, ErrTripCompleted
	}
	trip.Status = models.StatusCancelled
	if err := s.db.Save(&trip).Error; err != nil {
		return models.Trip{}, false, err
	}
	return trip, true, nil
}
