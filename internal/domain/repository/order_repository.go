// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"fieldforce/internal/domain/entity"
	"fieldforce/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
)

// OrderRepository defines the interface for order-related database operations.
type OrderRepository interface {
	// CreateOrder persists an order together with all of its lines.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID retrieves an order with its lines.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindOrdersByUser retrieves a user's orders, most recent first.
	FindOrdersByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Order, error)
}
