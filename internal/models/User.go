package models

import "time"

// User roles.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Username string `gorm:"unique" json:"username"`
	// Password is the scrypt digest and salt concatenated as "hexhash.hexsalt".
	Password string `json:"-"`
	Role     string `json:"role"` // "admin" or "user"
}
