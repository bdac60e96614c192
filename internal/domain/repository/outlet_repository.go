// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"fieldforce/internal/domain/entity"
	"fieldforce/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for outlet persistence.
var (
	// ErrOutletNotFound is returned when an outlet is not found.
	ErrOutletNotFound = errors.New("outlet not found")
)

// OutletRepository defines the interface for outlet-related database operations.
type OutletRepository interface {
	// CreateOutlet persists a new outlet.
	CreateOutlet(ctx context.Context, outlet *entity.Outlet) error

	// FindOutletByID retrieves an outlet by its unique ID.
	FindOutletByID(ctx context.Context, id uuid.UUID) (*entity.Outlet, error)

	// FindActiveOutlets retrieves all active outlets. The tracking layer
	// builds its geofence set from this list.
	FindActiveOutlets(ctx context.Context) ([]*entity.Outlet, error)

	// FindOutletsByDistributor retrieves all outlets served by a distributor.
	FindOutletsByDistributor(ctx context.Context, distributorID uuid.UUID) ([]*entity.Outlet, error)

	// UpdateOutlet updates an existing outlet record. An address change
	// moves the geofence center; the radius is never changed here.
	UpdateOutlet(ctx context.Context, outlet *entity.Outlet) error
}
