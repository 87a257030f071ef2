package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FabricInventory is the fabric counterpart of InventoryBalance.
// Quantities are decimal because fabric is stocked in fractional
// units (meters, kilograms).
type FabricInventory struct {
	ID               int               `gorm:"primary_key" json:"id"`
	FabricMaterialId int               `gorm:"not null;uniqueIndex:uniq_fabric_balance_per_material_location" json:"fabric_material_id"`
	FabricMaterial   FabricMaterial    `gorm:"constraint:OnDelete:CASCADE" json:"fabric_material"`
	LocationId       int               `gorm:"not null;uniqueIndex:uniq_fabric_balance_per_material_location" json:"location_id"`
	Location         InventoryLocation `gorm:"constraint:OnDelete:RESTRICT" json:"location"`
	QtyOnHand        decimal.Decimal   `gorm:"type:decimal(14,3);default:0" json:"qty_on_hand"`
	CreatedAt        time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}
