package pricing

import (
	"testing"

	"fieldforce/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrOf(v float64) *float64 {
	return &v
}

func catalogEntry(mrp float64, ptr *float64, unitsPerCase, stock int) *entity.SKUCatalogEntry {
	return &entity.SKUCatalogEntry{
		SKUID:         uuid.New(),
		Name:          "Amla Juice 500ml",
		MRP:           mrp,
		PTR:           ptr,
		UnitsPerCase:  unitsPerCase,
		StockQuantity: stock,
	}
}

func TestUnitPrice_PTRIsAuthoritative(t *testing.T) {
	entry := catalogEntry(130, ptrOf(95), 10, 100)

	assert.Equal(t, 95.0, UnitPrice(entry))
}

func TestUnitPrice_FallsBackToMRPMarkup(t *testing.T) {
	entry := catalogEntry(130, nil, 10, 100)

	assert.InDelta(t, 100.0, UnitPrice(entry), 1e-9)
}

func TestUnitPrice_NilEntryIsZero(t *testing.T) {
	assert.Equal(t, 0.0, UnitPrice(nil))
}

func TestSchemeDiscountPercent_Tiers(t *testing.T) {
	cases := map[int]float64{
		0:   0,
		1:   1,
		5:   1,
		6:   2,
		20:  2,
		21:  3,
		100: 3,
	}
	for quantity, expected := range cases {
		assert.Equal(t, expected, SchemeDiscountPercent(quantity), "cases=%d", quantity)
	}
}

func TestPriceLine_CaseOrderWithScheme(t *testing.T) {
	// MRP 130, no PTR, 10 units per case: unit price 100, one case = 1000,
	// 1% tier, final 990.
	entry := catalogEntry(130, nil, 10, 100)
	line := CartLine{
		SKUID:       entry.SKUID.String(),
		UnitType:    entity.UnitTypeCases,
		Quantity:    1,
		ApplyScheme: true,
	}

	quote := PriceLine(line, entry)
	assert.InDelta(t, 100.0, quote.UnitPrice, 1e-9)
	assert.Equal(t, 10, quote.TotalUnits)
	assert.InDelta(t, 1000.0, quote.ExtendedPrice, 1e-9)
	assert.Equal(t, 1.0, quote.SchemeDiscountPct)
	assert.InDelta(t, 990.0, quote.FinalPrice, 1e-9)
	assert.False(t, quote.MissingEntry)
}

func TestPriceLine_SchemeOptOutForcesZeroDiscount(t *testing.T) {
	entry := catalogEntry(130, ptrOf(100), 10, 1000)
	line := CartLine{
		SKUID:       entry.SKUID.String(),
		UnitType:    entity.UnitTypeCases,
		Quantity:    25,
		ApplyScheme: false,
	}

	quote := PriceLine(line, entry)
	assert.Equal(t, 0.0, quote.SchemeDiscountPct)
	assert.InDelta(t, quote.ExtendedPrice, quote.FinalPrice, 1e-9)
}

func TestPriceLine_UnitOrdersNeverDiscount(t *testing.T) {
	entry := catalogEntry(130, ptrOf(100), 10, 1000)
	line := CartLine{
		SKUID:       entry.SKUID.String(),
		UnitType:    entity.UnitTypeUnits,
		Quantity:    50,
		ApplyScheme: true,
	}

	quote := PriceLine(line, entry)
	assert.Equal(t, 0.0, quote.SchemeDiscountPct)
	assert.Equal(t, 50, quote.TotalUnits)
	assert.InDelta(t, 5000.0, quote.ExtendedPrice, 1e-9)
	assert.InDelta(t, 5000.0, quote.FinalPrice, 1e-9)
}

func TestPriceLine_MissingEntryIsZeroPricedAndFlagged(t *testing.T) {
	line := CartLine{
		SKUID:       uuid.New().String(),
		UnitType:    entity.UnitTypeCases,
		Quantity:    3,
		ApplyScheme: true,
	}

	quote := PriceLine(line, nil)
	assert.True(t, quote.MissingEntry)
	assert.Equal(t, 0.0, quote.UnitPrice)
	assert.Equal(t, 0.0, quote.ExtendedPrice)
	assert.Equal(t, 0.0, quote.FinalPrice)
}

func TestCheckStock_ReportsShortfall(t *testing.T) {
	// 5 units in stock, 2 cases of 3 units requested: 6 needed, short 1.
	entry := catalogEntry(130, ptrOf(100), 3, 5)
	line := CartLine{
		SKUID:    entry.SKUID.String(),
		UnitType: entity.UnitTypeCases,
		Quantity: 2,
	}

	shortfall := CheckStock(line, entry)
	require.NotNil(t, shortfall)
	assert.Equal(t, entry.SKUID.String(), shortfall.SKUID)
	assert.Equal(t, 6, shortfall.Required)
	assert.Equal(t, 5, shortfall.Available)
	assert.Equal(t, 1, shortfall.Units())
}

func TestCheckStock_SufficientStockPasses(t *testing.T) {
	entry := catalogEntry(130, ptrOf(100), 3, 6)
	line := CartLine{
		SKUID:    entry.SKUID.String(),
		UnitType: entity.UnitTypeCases,
		Quantity: 2,
	}

	assert.Nil(t, CheckStock(line, entry))
}

func TestRequiredUnits(t *testing.T) {
	entry := catalogEntry(130, ptrOf(100), 12, 100)

	caseLine := CartLine{UnitType: entity.UnitTypeCases, Quantity: 4}
	assert.Equal(t, 48, RequiredUnits(caseLine, entry))

	unitLine := CartLine{UnitType: entity.UnitTypeUnits, Quantity: 4}
	assert.Equal(t, 4, RequiredUnits(unitLine, entry))
}
