package usecase

import (
	"context"

	"fieldforce/internal/domain/entity"

	"github.com/google/uuid"
)

// TrackingStatus is a snapshot of one user's tracking session.
type TrackingStatus struct {
	Active            bool               `json:"active"`
	LocationAvailable bool               `json:"location_available"`
	LastSample        *entity.Coordinate `json:"last_sample,omitempty"`
	ActiveOutletIDs   []uuid.UUID        `json:"active_outlet_ids"`
}

// TrackingUsecase manages per-user tracking sessions: each session consumes
// the user's device location stream and converts it into geofence entry and
// exit transitions.
type TrackingUsecase interface {
	// StartSession opens a tracking session for the user and begins
	// consuming their location stream. Returns ErrSessionAlreadyActive if a
	// session is already running.
	StartSession(ctx context.Context, userID uuid.UUID) error

	// StopSession tears down the user's session. Open visits are left
	// open; dwell time reflects reported exits, not session teardown.
	StopSession(ctx context.Context, userID uuid.UUID) error

	// IngestLocation feeds one reported GPS sample into the user's stream.
	// Returns ErrSessionNotFound when no session is active.
	IngestLocation(ctx context.Context, userID uuid.UUID, sample entity.Coordinate) error

	// ReportLocationUnavailable feeds a location-unavailable condition into
	// the user's stream. Geofence membership is retained until valid
	// samples resume.
	ReportLocationUnavailable(ctx context.Context, userID uuid.UUID, reason string) error

	// ActiveOutlets returns the outlets the user is currently inside,
	// from live session state.
	ActiveOutlets(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)

	// Status returns the session snapshot for the user.
	Status(ctx context.Context, userID uuid.UUID) (*TrackingStatus, error)

	// RefreshGeofences reloads active outlets and swaps the fence set on
	// every running session.
	RefreshGeofences(ctx context.Context) error
}
