package usecase

import (
	"context"

	"fieldforce/internal/domain/entity"
	"fieldforce/internal/pricing"

	"github.com/google/uuid"
)

// CartLineInput is one unpriced cart line as submitted by the client.
type CartLineInput struct {
	SKUID       uuid.UUID `json:"sku_id"`
	UnitType    string    `json:"unit_type"`
	Quantity    int       `json:"quantity"`
	ApplyScheme bool      `json:"apply_scheme"`
}

// QuoteCartInput prices a cart against a distributor's catalog without
// creating an order.
type QuoteCartInput struct {
	DistributorID uuid.UUID       `json:"distributor_id"`
	Lines         []CartLineInput `json:"lines"`
}

// CartQuote is the priced cart returned to the order drawer.
type CartQuote struct {
	Lines         []pricing.LineQuote `json:"lines"`
	Subtotal      float64             `json:"subtotal"`
	TotalDiscount float64             `json:"total_discount"`
	FinalTotal    float64             `json:"final_total"`
}

// SubmitOrderInput creates an order from a cart. The cart is re-priced
// server side; client-computed prices are never trusted. AmountPaid is
// required for partially_paid and ignored otherwise.
type SubmitOrderInput struct {
	OutletID      uuid.UUID       `json:"outlet_id"`
	DistributorID uuid.UUID       `json:"distributor_id"`
	Lines         []CartLineInput `json:"lines"`
	PaymentStatus string          `json:"payment_status"`
	AmountPaid    *float64        `json:"amount_paid,omitempty"`
}

// OrderUsecase prices carts and creates orders. Order creation is gated on
// live geofence membership: a rep can only submit an order for an outlet
// they are currently inside.
type OrderUsecase interface {
	// QuoteCart prices a cart without side effects.
	QuoteCart(ctx context.Context, input *QuoteCartInput) (*CartQuote, error)

	// SubmitOrder re-prices the cart, validates stock in one pass, and
	// creates the order with a guarded stock decrement inside a single
	// transaction.
	SubmitOrder(ctx context.Context, userID uuid.UUID, input *SubmitOrderInput) (*entity.Order, error)

	// GetOrder retrieves an order with its lines.
	GetOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error)

	// ListOrders returns a user's orders, most recent first.
	ListOrders(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Order, error)

	// PaymentQR renders a PNG QR code for the order's outstanding amount.
	PaymentQR(ctx context.Context, orderID uuid.UUID) ([]byte, error)
}

// StockUsecase exposes the distributor catalog with live stock levels.
type StockUsecase interface {
	// ListStock returns the full catalog for a distributor.
	ListStock(ctx context.Context, distributorID uuid.UUID) ([]*entity.SKUCatalogEntry, error)
}
