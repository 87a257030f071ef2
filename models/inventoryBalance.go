package models

import "time"

// InventoryBalance holds the current finished-goods quantity for one
// SKU at one location. QtyOnHand is signed; adjustments may take it
// below zero. Balances cascade away with their SKU.
type InventoryBalance struct {
	ID           int               `gorm:"primary_key" json:"id"`
	SkuId        int               `gorm:"not null;uniqueIndex:uniq_balance_per_sku_location" json:"sku_id"`
	Sku          ProductSKU        `gorm:"constraint:OnDelete:CASCADE" json:"sku"`
	LocationId   int               `gorm:"not null;uniqueIndex:uniq_balance_per_sku_location" json:"location_id"`
	Location     InventoryLocation `gorm:"constraint:OnDelete:RESTRICT" json:"location"`
	QtyOnHand    int               `gorm:"not null;default:0" json:"qty_on_hand"`
	ReorderLevel int               `gorm:"not null;default:0" json:"reorder_level"`
	CreatedAt    time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}
