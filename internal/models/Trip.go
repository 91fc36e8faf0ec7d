// internal/models/Trip.go
package models

import (
	"time"

	"gorm.io/datatypes"
)

// Trip statuses. "completed" and "cancelled" are terminal: once a trip
// reaches either, its status never changes again. Cancelling a trip is a
// status transition, not a row deletion.
const (
	StatusInTransit = "in_transit"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Fuel types carried by the fleet.
const (
	FuelDiesel     = "diesel"
	FuelGasoline   = "gasoline"
	FuelNaturalGas = "natural_gas"
)

// Trip is one fuel-delivery run by a driver/truck pair from an origin to a
// destination. Driver and Truck are denormalized free text, not foreign keys:
// renaming a driver does not rewrite historical trips.
type Trip struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Driver         string    `json:"driver"`
	Truck          string    `json:"truck"`
	FuelType       string    `json:"fuel_type"`
	Origin         string    `json:"origin"`
	Destination    string    `json:"destination"`
	Status         string    `gorm:"index;default:in_transit" json:"status"`
	QuantityLiters int       `json:"quantity_liters"`
	DepartureAt    time.Time `json:"departure_at"`

	// Uploaded files linked to this trip, stored as a JSON array of Attachment.
	Attachments datatypes.JSON `json:"attachments,omitempty"`
}

// ValidStatus reports whether s is one of the trip status values.
func ValidStatus(s string) bool {
	return s == StatusInTransit || s == StatusCompleted || s == StatusCancelled
}

// TerminalStatus reports whether s is a state no trip may leave.
func TerminalStatus(s string) bool {
	return s == StatusCompleted || s == StatusCancelled
}

// ValidFuelType reports whether s is one of the fuel type values.
func ValidFuelType(s string) bool {
	return s == FuelDiesel || s == FuelGasoline || s == FuelNaturalGas
}
