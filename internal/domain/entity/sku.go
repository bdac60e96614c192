// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// SKUCatalogEntry is one stock-keeping unit in a distributor's catalog.
// PTR (price to retailer) is the authoritative per-unit wholesale price;
// when it is absent the pricing engine backs it out of the MRP.
type SKUCatalogEntry struct {
	SKUID         uuid.UUID `json:"sku_id"`
	DistributorID uuid.UUID `json:"distributor_id"`
	Name          string    `json:"name"`
	MRP           float64   `json:"mrp"`            // Maximum retail price per unit.
	PTR           *float64  `json:"ptr,omitempty"`  // Price to retailer per unit, nullable.
	UnitsPerCase  int       `json:"units_per_case"` // Number of sellable units in one case.
	StockQuantity int       `json:"stock_quantity"` // Available stock, in units.
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
