package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OutletModel is the GORM-specific struct for the 'outlets' table.
// Latitude and longitude are the outlet's geofence center.
type OutletModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DistributorID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name          string    `gorm:"type:varchar(255);not null"`
	FullAddress   string    `gorm:"type:text;not null"`
	Latitude      float64   `gorm:"type:decimal(10,8);not null"`
	Longitude     float64   `gorm:"type:decimal(11,8);not null"`
	RadiusMeters  float64   `gorm:"type:decimal(8,2);not null"`
	IsActive      bool      `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (OutletModel) TableName() string {
	return "outlets"
}
