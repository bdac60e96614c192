package errors

import (
	"fmt"
	"net/http"
	"strings"
)

// StockShortfallItem names one SKU that cannot be fulfilled and by how much.
type StockShortfallItem struct {
	SKUID     string `json:"sku_id"`
	SKUName   string `json:"sku_name,omitempty"`
	Required  int    `json:"required"`
	Available int    `json:"available"`
	Shortfall int    `json:"shortfall"`
}

// InsufficientStockError is returned when order submission fails stock
// validation. It carries every failing SKU in one error so the caller can
// fix the whole cart in a single round trip.
type InsufficientStockError struct {
	Items []StockShortfallItem
}

// NewInsufficientStockError creates an InsufficientStockError for the
// failing SKUs.
func NewInsufficientStockError(items []StockShortfallItem) *InsufficientStockError {
	return &InsufficientStockError{Items: items}
}

// Error implements the error interface
func (e *InsufficientStockError) Error() string {
	parts := make([]string, 0, len(e.Items))
	for _, item := range e.Items {
		name := item.SKUName
		if name == "" {
			name = item.SKUID
		}
		parts = append(parts, fmt.Sprintf("%s (need %d, have %d, short %d)",
			name, item.Required, item.Available, item.Shortfall))
	}

	return "insufficient stock: " + strings.Join(parts, "; ")
}

// HTTPCode returns the HTTP status code
func (e *InsufficientStockError) HTTPCode() int {
	return http.StatusConflict
}

// ErrorCode returns the business error code
func (e *InsufficientStockError) ErrorCode() string {
	return "INSUFFICIENT_STOCK"
}

// Message returns the user-friendly error message
func (e *InsufficientStockError) Message() string {
	return "Requested quantities exceed available stock"
}

// Details returns detailed error information
func (e *InsufficientStockError) Details() string {
	return e.Error()
}
