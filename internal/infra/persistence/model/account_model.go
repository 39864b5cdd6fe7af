// Package model contains the GORM persistence models mirroring the database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type AccountModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Handle       string    `gorm:"type:varchar(100);unique;not null"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(20);not null"`
	IsActive     bool      `gorm:"not null;default:true"`
	IsStaff      bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// AuthTokenModel mirrors the 'auth_tokens' table. The key itself is the primary key;
// the unique account ID enforces at most one live token per account.
type AuthTokenModel struct {
	Key       string    `gorm:"type:varchar(40);primary_key"`
	AccountID uuid.UUID `gorm:"type:uuid;unique;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AuthTokenModel) TableName() string {
	return "auth_tokens"
}
