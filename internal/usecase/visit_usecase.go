package usecase

import (
	"context"
	"time"

	"fieldforce/internal/domain/entity"

	"github.com/google/uuid"
)

// VisitUsecase is the visit ledger: it turns geofence transitions into
// persistent visit records and publishes visit events for async processing.
// Ledger writes are best-effort from the tracking session's point of view:
// a failed write is logged and surfaced to the rep's devices, never retried,
// and never blocks geofence state.
type VisitUsecase interface {
	// RecordEntry opens a visit for the (user, outlet) pair at the given
	// time. A dangling open visit for the same pair is logged as an anomaly
	// and left untouched; the new visit is created regardless.
	RecordEntry(ctx context.Context, userID uuid.UUID, outletID uuid.UUID, outletName string, sample entity.Coordinate, at time.Time) (*entity.Visit, error)

	// RecordExit closes the open visit for the (user, outlet) pair at the
	// given time, deriving the dwell duration.
	RecordExit(ctx context.Context, userID uuid.UUID, outletID uuid.UUID, outletName string, sample entity.Coordinate, at time.Time) (*entity.Visit, error)

	// ListVisitsByUser returns a user's visit history, most recent first.
	ListVisitsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Visit, error)

	// ListVisitsByOutlet returns an outlet's visit history, most recent first.
	ListVisitsByOutlet(ctx context.Context, outletID uuid.UUID, limit int) ([]*entity.Visit, error)
}
