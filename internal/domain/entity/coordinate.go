// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/paulmach/orb"
)

// Coordinate is a single GPS sample produced by a device location stream.
// Samples arrive push-driven at whatever cadence the device chooses; there
// is no fixed polling interval.
type Coordinate struct {
	Latitude   float64   `json:"latitude"`           // The geographic latitude in degrees.
	Longitude  float64   `json:"longitude"`          // The geographic longitude in degrees.
	Accuracy   *float64  `json:"accuracy,omitempty"` // Optional horizontal accuracy estimate in meters.
	ObservedAt time.Time `json:"observed_at"`        // Timestamp of when the device captured the sample.
}

// Point returns the sample as an orb.Point (longitude, latitude order).
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}
