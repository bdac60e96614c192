// Package entity contains the core business objects of the project.
package entity

// OrderUnitType represents how a cart line's quantity is expressed.
type OrderUnitType string

const (
	// UnitTypeUnits means the quantity counts individual sellable units.
	UnitTypeUnits OrderUnitType = "units"
	// UnitTypeCases means the quantity counts cases of UnitsPerCase units.
	UnitTypeCases OrderUnitType = "cases"
)

// String returns the string representation of the OrderUnitType.
func (u OrderUnitType) String() string {
	return string(u)
}

// IsValid checks if the OrderUnitType is a valid value.
func (u OrderUnitType) IsValid() bool {
	switch u {
	case UnitTypeUnits, UnitTypeCases:
		return true
	default:
		return false
	}
}
