package service

import (
	"context"
	"time"
)

// Visit event types carried on the wire.
const (
	VisitEventEntered = "entered"
	VisitEventExited  = "exited"
)

// VisitEvent represents a geofence entry or exit to be processed by the
// visit worker (supervisor push notifications, downstream analytics).
type VisitEvent struct {
	RequestID       string    `json:"request_id,omitempty"` // For distributed tracing
	EventType       string    `json:"event_type"`           // "entered" or "exited"
	VisitID         string    `json:"visit_id,omitempty"`   // Empty when the ledger write failed
	UserID          string    `json:"user_id"`
	OutletID        string    `json:"outlet_id"`
	OutletName      string    `json:"outlet_name"`
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
	DurationMinutes *int64    `json:"duration_minutes,omitempty"` // Set on exit events only
	OccurredAt      time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishVisitEvent publishes a visit event for async processing
	PublishVisitEvent(ctx context.Context, event *VisitEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
