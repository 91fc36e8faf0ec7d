package models

import "time"

// Report is an operational note attached to a trip.
type Report struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	TripID  uint   `gorm:"index" json:"trip_id"`
	Trip    Trip   `gorm:"foreignKey:TripID" json:"trip,omitempty"`
	Details string `json:"details"`
}
