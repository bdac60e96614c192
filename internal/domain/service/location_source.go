// Package service defines interfaces for domain services implemented by the
// infrastructure layer.
package service

import (
	"context"

	"fieldforce/internal/domain/entity"

	"github.com/google/uuid"
)

// LocationUpdate is one element of a device's location stream. Exactly one
// of Coordinate or Err is set: an Err update reports a location-unavailable
// condition (permission denied, timeout, no hardware) and is not terminal;
// the stream resumes when valid samples arrive again.
type LocationUpdate struct {
	Coordinate *entity.Coordinate
	Err        error
}

// Subscription is a cancelable handle on a user's location stream.
type Subscription interface {
	// Updates returns the stream channel. It is closed when the
	// subscription is canceled; consumers block between samples (delivery
	// is push-driven, there is no polling).
	Updates() <-chan LocationUpdate

	// Close cancels the subscription and releases its resources.
	Close()
}

// LocationSource provides per-user device location streams. The source
// decides the sampling cadence and may coalesce or skip samples under poor
// signal.
type LocationSource interface {
	// Subscribe opens the location stream for a user.
	Subscribe(ctx context.Context, userID uuid.UUID) (Subscription, error)
}

// LocationSink is the producer side of the device feed. The delivery layer
// pushes reported samples and unavailability conditions into it.
type LocationSink interface {
	// Publish delivers one GPS sample to the user's subscribers.
	Publish(userID uuid.UUID, sample entity.Coordinate)

	// ReportError delivers a location-unavailable condition to the user's
	// subscribers. The stream is expected to recover on the next Publish.
	ReportError(userID uuid.UUID, reason error)
}
