package model

import (
	"time"

	"github.com/google/uuid"
)

// SKUStockModel is the GORM-specific struct for the 'sku_stock' table.
// It is one distributor's catalog entry for a SKU with its live stock
// level. PTR is nullable; pricing falls back to deriving it from the MRP.
type SKUStockModel struct {
	SKUID         uuid.UUID `gorm:"type:uuid;primary_key"`
	DistributorID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name          string    `gorm:"type:varchar(255);not null"`
	MRP           float64   `gorm:"type:decimal(12,2);not null"`
	PTR           *float64  `gorm:"type:decimal(12,2)"`
	UnitsPerCase  int       `gorm:"not null;default:1"`
	StockQuantity int       `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (SKUStockModel) TableName() string {
	return "sku_stock"
}
