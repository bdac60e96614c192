// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"fieldforce/internal/domain/entity"
	"fieldforce/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for stock persistence.
var (
	// ErrSKUNotFound is returned when a catalog entry is not found.
	ErrSKUNotFound = errors.New("sku not found")
	// ErrStockConflict is returned when a guarded stock decrement loses a
	// race and the remaining stock no longer covers the requested units.
	ErrStockConflict = errors.New("stock changed concurrently")
)

// StockRepository is the catalog reader and stock mutator for a
// distributor's SKUs.
type StockRepository interface {
	// ListStock retrieves the full catalog for a distributor.
	ListStock(ctx context.Context, distributorID uuid.UUID) ([]*entity.SKUCatalogEntry, error)

	// FindSKUByID retrieves a single catalog entry.
	FindSKUByID(ctx context.Context, skuID uuid.UUID) (*entity.SKUCatalogEntry, error)

	// DecrementStock atomically subtracts units from a SKU's stock with a
	// guard on the current quantity (UPDATE ... WHERE stock_quantity >= units).
	// Returns ErrStockConflict when the guard fails.
	DecrementStock(ctx context.Context, skuID uuid.UUID, units int) error
}
