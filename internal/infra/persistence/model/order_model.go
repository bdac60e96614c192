package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
// Monetary totals are frozen at creation; orders are immutable afterwards.
type OrderModel struct {
	ID            uuid.UUID        `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID        uuid.UUID        `gorm:"type:uuid;not null;index"`
	OutletID      uuid.UUID        `gorm:"type:uuid;not null;index"`
	DistributorID uuid.UUID        `gorm:"type:uuid;not null"`
	Subtotal      float64          `gorm:"type:decimal(14,2);not null"`
	TotalDiscount float64          `gorm:"type:decimal(14,2);not null"`
	FinalTotal    float64          `gorm:"type:decimal(14,2);not null"`
	PaymentStatus string           `gorm:"type:varchar(20);not null"`
	AmountPaid    float64          `gorm:"type:decimal(14,2);not null;default:0"`
	Lines         []OrderLineModel `gorm:"foreignKey:OrderID"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderLineModel is the GORM-specific struct for the 'order_lines' table.
type OrderLineModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID           uuid.UUID `gorm:"type:uuid;not null;index"`
	SKUID             uuid.UUID `gorm:"type:uuid;not null"`
	UnitType          string    `gorm:"type:varchar(10);not null"`
	Quantity          int       `gorm:"not null"`
	ApplyScheme       bool      `gorm:"not null;default:false"`
	UnitPrice         float64   `gorm:"type:decimal(12,2);not null"`
	TotalUnits        int       `gorm:"not null"`
	ExtendedPrice     float64   `gorm:"type:decimal(14,2);not null"`
	SchemeDiscountPct float64   `gorm:"type:decimal(5,2);not null;default:0"`
	FinalPrice        float64   `gorm:"type:decimal(14,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderLineModel) TableName() string {
	return "order_lines"
}
