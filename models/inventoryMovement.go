package models

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type MovementType string

const (
	MovementTypeIn     MovementType = "IN"
	MovementTypeOut    MovementType = "OUT"
	MovementTypeAdjust MovementType = "ADJ"
)

func (t MovementType) IsValid() bool {
	switch t {
	case MovementTypeIn, MovementTypeOut, MovementTypeAdjust:
		return true
	}
	return false
}

// InventoryMovement is an append-only ledger entry for finished goods.
// Qty is always positive; the direction is carried by MovementType.
// RefTable/RefId optionally point back at the originating record,
// e.g. ("order", "123").
type InventoryMovement struct {
	ID           int               `gorm:"primary_key" json:"id"`
	SkuId        int               `gorm:"not null;index" json:"sku_id"`
	Sku          ProductSKU        `gorm:"constraint:OnDelete:CASCADE" json:"sku"`
	LocationId   int               `gorm:"not null;index" json:"location_id"`
	Location     InventoryLocation `gorm:"constraint:OnDelete:RESTRICT" json:"location"`
	MovementType MovementType      `gorm:"type:enum('IN','OUT','ADJ');not null" json:"movement_type"`
	Qty          int               `gorm:"not null" json:"qty"`
	RefTable     *string           `gorm:"size:50" json:"ref_table"`
	RefId        *string           `gorm:"size:50" json:"ref_id"`
	Note         string            `gorm:"type:text" json:"note"`
	CreatedAt    time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

// RecordInventoryMovement appends a ledger entry. Movements are never
// updated or deleted, and they do not touch InventoryBalance rows:
// balance changes travel their own path.
func RecordInventoryMovement(ctx context.Context, tx *gorm.DB, movement *InventoryMovement) error {
	if !movement.MovementType.IsValid() {
		return fmt.Errorf("invalid movement type %q", movement.MovementType)
	}
	if movement.Qty < 1 {
		return fmt.Errorf("movement qty must be at least 1, got %d", movement.Qty)
	}
	return tx.WithContext(ctx).Create(movement).Error
}
