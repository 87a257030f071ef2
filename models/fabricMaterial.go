package models

import "time"

// FabricMaterial is a fabric stock-keeping variant: raw fabric has
// IsPrinted=false and no pattern, printed fabric carries the pattern
// it was printed with. The resolver in the seeder keeps the two fields
// in agreement; the invariant is that a pattern is present exactly
// when IsPrinted is true.
type FabricMaterial struct {
	ID             int           `gorm:"primary_key" json:"id"`
	FabricTypeId   int           `gorm:"not null;uniqueIndex:uniq_fabric_material_variant" json:"fabric_type_id"`
	FabricType     FabricType    `gorm:"constraint:OnDelete:RESTRICT" json:"fabric_type"`
	Uom            string        `gorm:"size:20;not null;default:meter;uniqueIndex:uniq_fabric_material_variant" json:"uom"`
	IsPrinted      bool          `gorm:"not null;default:false;uniqueIndex:uniq_fabric_material_variant" json:"is_printed"`
	PrintPatternId *int          `gorm:"uniqueIndex:uniq_fabric_material_variant" json:"print_pattern_id"`
	PrintPattern   *PrintPattern `gorm:"constraint:OnDelete:RESTRICT" json:"print_pattern"`
	CreatedAt      time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}
