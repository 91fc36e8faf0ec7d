// internal/models/Truck.go
package models

import (
	"time"

	"gorm.io/datatypes"
)

// Truck is one tanker in the fleet. Capacity is in liters.
type Truck struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Plate      string `gorm:"unique" json:"plate"`
	TruckModel string `json:"truck_model"`
	Capacity   int    `json:"capacity"`

	Photo     datatypes.JSON `json:"photo,omitempty"`
	Documents datatypes.JSON `json:"documents,omitempty"`
}
