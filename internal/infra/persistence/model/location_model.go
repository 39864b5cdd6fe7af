package model

import (
	"time"

	"github.com/google/uuid"
)

// LocationModel mirrors the 'locations' table. Coordinates are nullable as a
// pair: geocoding either filled both or neither.
type LocationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Street    string    `gorm:"type:varchar(255)"`
	City      string    `gorm:"type:varchar(255)"`
	State     string    `gorm:"type:varchar(255)"`
	Country   string    `gorm:"type:varchar(255)"`
	Latitude  *float64  `gorm:"type:double precision"`
	Longitude *float64  `gorm:"type:double precision"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}
