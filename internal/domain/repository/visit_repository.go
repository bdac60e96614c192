// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"fieldforce/internal/domain/entity"
	"fieldforce/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for visit persistence.
var (
	// ErrVisitNotFound is returned when a visit is not found.
	ErrVisitNotFound = errors.New("visit not found")
	// ErrVisitAlreadyClosed is returned when trying to close a visit that already has an exit time.
	ErrVisitAlreadyClosed = errors.New("visit already closed")
)

// VisitRepository defines the interface for visit-related database operations.
// The backing store is the source of truth for visit records; the ledger's
// in-memory open-visit cache only accelerates lookups.
type VisitRepository interface {
	// CreateVisit persists a new open visit (ExitTime nil).
	CreateVisit(ctx context.Context, visit *entity.Visit) error

	// CloseVisit sets the exit time and duration on an open visit.
	// Returns ErrVisitNotFound if the visit does not exist and
	// ErrVisitAlreadyClosed if it was closed before.
	CloseVisit(ctx context.Context, visitID uuid.UUID, exitTime time.Time, durationMinutes int64) error

	// FindOpenVisit retrieves the single open visit for a (user, outlet)
	// pair: ExitTime IS NULL, most recent EntryTime. Returns
	// ErrVisitNotFound when no open visit exists.
	FindOpenVisit(ctx context.Context, userID, outletID uuid.UUID) (*entity.Visit, error)

	// FindVisitsByUser retrieves a user's visits, most recent first.
	FindVisitsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Visit, error)

	// FindVisitsByOutlet retrieves an outlet's visits, most recent first.
	FindVisitsByOutlet(ctx context.Context, outletID uuid.UUID, limit int) ([]*entity.Visit, error)
}
