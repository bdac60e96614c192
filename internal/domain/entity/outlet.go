// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Outlet is a retail outlet served by the distributor. Its coordinates are
// the center of a circular geofence used to detect sales-rep visits.
// The geofence center only changes when the outlet's address changes; the
// radius is fixed per deployment and never varies per outlet.
type Outlet struct {
	ID            uuid.UUID // The Global Unique Identifier (GUID) for the outlet.
	DistributorID uuid.UUID // The distributor this outlet buys from.
	Name          string    // Outlet display name.
	FullAddress   string    // The full, human-readable street address.
	Latitude      float64   // Geofence center latitude.
	Longitude     float64   // Geofence center longitude.
	RadiusMeters  float64   // Geofence radius in meters. Invariant: > 0.
	IsActive      bool      // Inactive outlets are excluded from tracking and ordering.
	CreatedAt     time.Time // Timestamp of when this outlet was created.
	UpdatedAt     time.Time // Timestamp of the last modification.
}

// Center returns the geofence center as an orb.Point (longitude, latitude).
func (o *Outlet) Center() orb.Point {
	return orb.Point{o.Longitude, o.Latitude}
}
