// Package pricing implements the order line pricing and scheme discount
// engine: unit price resolution, unit/case extension, volume discount tiers
// and stock sufficiency checks.
package pricing

import (
	"fieldforce/internal/domain/entity"
)

// mrpMarkupDivisor backs the price-to-retailer out of the MRP when the
// catalog carries no PTR. Fixed business rule for this domain.
const mrpMarkupDivisor = 1.3

// Volume discount tiers for case orders, in cases. Evaluated highest first.
const (
	tier3PctCases = 21
	tier2PctCases = 6
	tier1PctCases = 1
)

// CartLine is one unpriced cart entry as submitted by the order drawer.
type CartLine struct {
	SKUID       string
	UnitType    entity.OrderUnitType
	Quantity    int // Invariant: >= 1, validated upstream.
	ApplyScheme bool
}

// LineQuote is the priced form of a cart line.
type LineQuote struct {
	SKUID             string
	UnitType          entity.OrderUnitType
	Quantity          int
	ApplyScheme       bool
	UnitPrice         float64
	TotalUnits        int
	ExtendedPrice     float64
	SchemeDiscountPct float64
	FinalPrice        float64
	MissingEntry      bool // No catalog entry; the zero price is suspect.
}

// Shortfall reports a SKU whose available stock cannot cover a line.
type Shortfall struct {
	SKUID     string
	SKUName   string
	Required  int
	Available int
}

// Units returns how many units short the stock is.
func (s Shortfall) Units() int {
	return s.Required - s.Available
}

// UnitPrice resolves the authoritative per-unit price for a catalog entry:
// PTR when present and positive, otherwise MRP backed out of the fixed
// markup. A nil entry prices at 0; callers must treat such lines as suspect.
func UnitPrice(entry *entity.SKUCatalogEntry) float64 {
	if entry == nil {
		return 0
	}
	if entry.PTR != nil && *entry.PTR > 0 {
		return *entry.PTR
	}

	return entry.MRP / mrpMarkupDivisor
}

// SchemeDiscountPercent returns the volume discount for a case order of the
// given size. The tier is keyed on cases, not units.
func SchemeDiscountPercent(cases int) float64 {
	switch {
	case cases >= tier3PctCases:
		return 3
	case cases >= tier2PctCases:
		return 2
	case cases >= tier1PctCases:
		return 1
	default:
		return 0
	}
}

// RequiredUnits expands a line's quantity to individual units.
// A case line without a catalog entry cannot be expanded and requires 0.
func RequiredUnits(line CartLine, entry *entity.SKUCatalogEntry) int {
	if line.UnitType == entity.UnitTypeCases {
		if entry == nil {
			return 0
		}

		return line.Quantity * entry.UnitsPerCase
	}

	return line.Quantity
}

// PriceLine computes the full quote for one cart line against its catalog
// entry. The scheme discount applies to case lines only, gated by the
// line's opt-in flag; unit lines always carry 0%.
func PriceLine(line CartLine, entry *entity.SKUCatalogEntry) LineQuote {
	quote := LineQuote{
		SKUID:        line.SKUID,
		UnitType:     line.UnitType,
		Quantity:     line.Quantity,
		ApplyScheme:  line.ApplyScheme,
		UnitPrice:    UnitPrice(entry),
		MissingEntry: entry == nil,
	}

	if line.UnitType == entity.UnitTypeCases && entry != nil {
		quote.TotalUnits = line.Quantity * entry.UnitsPerCase
		quote.ExtendedPrice = quote.UnitPrice * float64(quote.TotalUnits)
		if line.ApplyScheme {
			quote.SchemeDiscountPct = SchemeDiscountPercent(line.Quantity)
		}
	} else {
		quote.TotalUnits = line.Quantity
		quote.ExtendedPrice = quote.UnitPrice * float64(line.Quantity)
	}

	quote.FinalPrice = quote.ExtendedPrice * (1 - quote.SchemeDiscountPct/100)

	return quote
}

// CheckStock validates a line against available stock. It returns a
// Shortfall when the required units exceed the entry's stock quantity, or
// nil when the line can be fulfilled. A line with no catalog entry has no
// stock to check and is reported by the pricing side instead.
func CheckStock(line CartLine, entry *entity.SKUCatalogEntry) *Shortfall {
	if entry == nil {
		return nil
	}

	required := RequiredUnits(line, entry)
	if required > entry.StockQuantity {
		return &Shortfall{
			SKUID:     line.SKUID,
			SKUName:   entry.Name,
			Required:  required,
			Available: entry.StockQuantity,
		}
	}

	return nil
}
