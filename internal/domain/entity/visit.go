// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Visit is a time-bounded record of a sales rep's presence inside an
// outlet's geofence. It is created open (ExitTime nil) on geofence entry and
// closed exactly once on exit. A closed visit is immutable. At most one open
// visit exists per (user, outlet) pair at any time.
type Visit struct {
	ID              uuid.UUID  `json:"id"`
	UserID          uuid.UUID  `json:"user_id"`
	OutletID        uuid.UUID  `json:"outlet_id"`
	EntryTime       time.Time  `json:"entry_time"`
	ExitTime        *time.Time `json:"exit_time,omitempty"`
	DurationMinutes *int64     `json:"duration_minutes,omitempty"`
	WithinRadius    bool       `json:"within_radius"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// IsOpen reports whether the visit has not been closed yet.
func (v *Visit) IsOpen() bool {
	return v.ExitTime == nil
}

// Close stamps the exit time and derives the dwell duration in whole
// minutes, rounded down. Calling Close on an already closed visit is a
// no-op; closed visits are immutable.
func (v *Visit) Close(exitTime time.Time) {
	if !v.IsOpen() {
		return
	}

	minutes := int64(exitTime.Sub(v.EntryTime) / time.Minute)
	if minutes < 0 {
		minutes = 0
	}

	v.ExitTime = &exitTime
	v.DurationMinutes = &minutes
}
