package usecase

import (
	"context"

	"fieldforce/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateOutletAddressInput moves an outlet's address and geofence center.
type UpdateOutletAddressInput struct {
	FullAddress string  `json:"full_address"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// OutletUsecase manages the outlets served by the distributor.
type OutletUsecase interface {
	// ListOutlets returns all active outlets.
	ListOutlets(ctx context.Context) ([]*entity.Outlet, error)

	// GetOutlet retrieves a single outlet.
	GetOutlet(ctx context.Context, id uuid.UUID) (*entity.Outlet, error)

	// UpdateOutletAddress changes an outlet's address and geofence center
	// and pushes the new fence set to running tracking sessions. The
	// geofence radius is never changed here.
	UpdateOutletAddress(ctx context.Context, id uuid.UUID, input *UpdateOutletAddressInput) (*entity.Outlet, error)
}
