package model

import "time"

// StockLevel is quantity on hand per (product, warehouse). The pair is
// the natural key; the surrogate id only feeds GORM.
type StockLevel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"-"`
	ProductCode string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_stock_product_warehouse" json:"-"`
	WarehouseID int64     `gorm:"not null;uniqueIndex:idx_stock_product_warehouse" json:"warehouse_id"`
	Quantity    int64     `gorm:"not null;default:0" json:"quantity"`
	Reserved    int64     `gorm:"not null;default:0" json:"reserved"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
