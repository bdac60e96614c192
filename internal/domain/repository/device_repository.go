// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"fieldforce/internal/domain/entity"
	"fieldforce/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when trying to register a device that already exists.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// UpsertDevice registers a device or refreshes its FCM token.
	UpsertDevice(ctx context.Context, device *entity.UserDevice) error

	// FindActiveDevicesByUser retrieves all active devices for a specific user.
	FindActiveDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// FindActiveDevicesByRole retrieves all active devices whose owner has
	// the given role. The worker uses this to fan out visit notifications
	// to supervisors.
	FindActiveDevicesByRole(ctx context.Context, role string) ([]*entity.UserDevice, error)

	// DeleteDevice removes a device by its ID (soft delete). Used to clean
	// up invalid FCM tokens.
	DeleteDevice(ctx context.Context, id uuid.UUID) error
}
