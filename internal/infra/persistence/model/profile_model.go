package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PersonProfileModel is the shared row shape of the 'user_profiles' and
// 'admin_profiles' tables. It deliberately has no TableName method: the
// repository selects the table per profile kind with db.Table().
type PersonProfileModel struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AccountID    uuid.UUID      `gorm:"type:uuid;unique;not null"`
	LocationID   uuid.UUID      `gorm:"type:uuid;unique;not null"`
	Location     *LocationModel `gorm:"foreignKey:LocationID;references:ID"`
	FirstName    string         `gorm:"type:varchar(100);not null"`
	MiddleName   string         `gorm:"type:varchar(100)"`
	LastName     string         `gorm:"type:varchar(100);not null"`
	Email        string         `gorm:"type:varchar(255);unique;not null"`
	Gender       string         `gorm:"type:varchar(10);not null"`
	DateOfBirth  *time.Time     `gorm:"type:date"`
	ContactNo    string         `gorm:"type:varchar(30)"`
	ProfileImage string         `gorm:"type:varchar(500)"`
	Interests    datatypes.JSONSlice[string]
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// BusinessProfileModel mirrors the 'business_profiles' table.
type BusinessProfileModel struct {
	ID            uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AccountID     uuid.UUID         `gorm:"type:uuid;unique;not null"`
	LocationID    uuid.UUID         `gorm:"type:uuid;unique;not null"`
	Location      *LocationModel    `gorm:"foreignKey:LocationID;references:ID"`
	BusinessName  string            `gorm:"type:varchar(255);not null"`
	BusinessType  string            `gorm:"type:varchar(100)"`
	BusinessHours datatypes.JSONMap `gorm:"type:jsonb"`
	Email         string            `gorm:"type:varchar(255);unique;not null"`
	ContactNo     string            `gorm:"type:varchar(30)"`
	BusinessLogo  string            `gorm:"type:varchar(500)"`
	WebsiteURL    string            `gorm:"type:varchar(500)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (BusinessProfileModel) TableName() string {
	return "business_profiles"
}
