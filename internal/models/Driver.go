// internal/models/Driver.go
package models

import (
	"time"

	"gorm.io/datatypes"
)

// Driver is a flat personnel record. Trips reference drivers by name only;
// there is no foreign key between the two tables.
type Driver struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name    string `json:"name"`
	License string `json:"license"`
	Phone   string `json:"phone"`

	// Photo holds a single Attachment, Documents an array of them.
	Photo     datatypes.JSON `json:"photo,omitempty"`
	Documents datatypes.JSON `json:"documents,omitempty"`
}
