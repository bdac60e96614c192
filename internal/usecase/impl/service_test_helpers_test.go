package impl

import (
	"io"
	"log/slog"

	"fieldforce/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newGeofenceConfig(radiusMeters float64) *config.Config {
	return &config.Config{
		Geofence: &config.GeofenceConfig{
			DefaultRadiusMeters: radiusMeters,
		},
	}
}
