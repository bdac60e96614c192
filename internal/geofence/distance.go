// Package geofence implements the visit-detection core: great-circle
// distance math and the per-session membership state machine that turns a
// stream of GPS samples into outlet entry/exit events.
package geofence

import (
	"math"

	"github.com/paulmach/orb"
)

// earthRadiusM is the mean Earth radius used by the haversine formula.
const earthRadiusM = 6371000.0

// Distance calculates the haversine great-circle distance between two
// points in meters. Points are orb.Point in (longitude, latitude) order.
// Pure and symmetric; NaN inputs propagate.
func Distance(p1, p2 orb.Point) float64 {
	lat1Rad := p1[1] * math.Pi / 180
	lng1Rad := p1[0] * math.Pi / 180
	lat2Rad := p2[1] * math.Pi / 180
	lng2Rad := p2[0] * math.Pi / 180

	deltaLat := lat2Rad - lat1Rad
	deltaLng := lng2Rad - lng1Rad

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusM * c
}
