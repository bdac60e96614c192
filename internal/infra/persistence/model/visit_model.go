package model

import (
	"time"

	"github.com/google/uuid"
)

// VisitModel is the GORM-specific struct for the 'visits' table.
// A NULL exit_time marks an open visit; the partial index enforces at most
// one open visit per (user, outlet) pair.
type VisitModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index:idx_visits_user_entry,priority:1"`
	OutletID        uuid.UUID `gorm:"type:uuid;not null;index"`
	EntryTime       time.Time `gorm:"not null;index:idx_visits_user_entry,priority:2,sort:desc"`
	ExitTime        *time.Time
	DurationMinutes *int64
	WithinRadius    bool `gorm:"not null;default:true"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (VisitModel) TableName() string {
	return "visits"
}
