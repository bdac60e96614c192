// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderLine is one priced line item of an order. Pricing fields are derived
// by the pricing engine at quote time and frozen when the order is created.
type OrderLine struct {
	ID                  uuid.UUID     `json:"id"`
	OrderID             uuid.UUID     `json:"order_id"`
	SKUID               uuid.UUID     `json:"sku_id"`
	UnitType            OrderUnitType `json:"unit_type"`
	Quantity            int           `json:"quantity"` // In units or cases per UnitType. Invariant: >= 1.
	ApplyScheme         bool          `json:"apply_scheme"`
	UnitPrice           float64       `json:"unit_price"`
	TotalUnits          int           `json:"total_units"` // Quantity expanded to individual units.
	ExtendedPrice       float64       `json:"extended_price"`
	SchemeDiscountPct   float64       `json:"scheme_discount_pct"`
	FinalPrice          float64       `json:"final_price"`
	MissingCatalogEntry bool          `json:"missing_catalog_entry,omitempty"` // Zero-priced line; suspect.
}

// Order is the aggregate of priced lines submitted by a sales rep for an
// outlet. AmountPaid is system-derived for Paid and Unpaid statuses and
// user-supplied only for PartiallyPaid.
type Order struct {
	ID            uuid.UUID     `json:"id"`
	UserID        uuid.UUID     `json:"user_id"`
	OutletID      uuid.UUID     `json:"outlet_id"`
	DistributorID uuid.UUID     `json:"distributor_id"`
	Lines         []OrderLine   `json:"lines"`
	Subtotal      float64       `json:"subtotal"`
	TotalDiscount float64       `json:"total_discount"`
	FinalTotal    float64       `json:"final_total"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	AmountPaid    float64       `json:"amount_paid"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
