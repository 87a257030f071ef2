package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ProductSKU is the sellable/storable unit: one size, one fabric and
// an optional print pattern. The dimension triple is the natural key;
// SkuCode is derived once and never rewritten afterwards, so existing
// codes stay stable even if the normalization rules change.
type ProductSKU struct {
	ID             int             `gorm:"primary_key" json:"id"`
	SkuCode        string          `gorm:"size:60;uniqueIndex" json:"sku_code"`
	SizeId         int             `gorm:"not null;uniqueIndex:uniq_sku_by_size_fabric_print" json:"size_id"`
	Size           ProductSize     `gorm:"constraint:OnDelete:RESTRICT" json:"size"`
	FabricTypeId   int             `gorm:"not null;uniqueIndex:uniq_sku_by_size_fabric_print" json:"fabric_type_id"`
	FabricType     FabricType      `gorm:"constraint:OnDelete:RESTRICT" json:"fabric_type"`
	PrintPatternId *int            `gorm:"uniqueIndex:uniq_sku_by_size_fabric_print" json:"print_pattern_id"`
	PrintPattern   *PrintPattern   `gorm:"constraint:OnDelete:RESTRICT" json:"print_pattern"`
	UnitPrice      decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"unit_price"`
	IsActive       bool            `gorm:"not null;default:true" json:"is_active"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// BuildSkuCode derives the canonical code for a dimension triple,
// e.g. BAG-STD-COTTON-PLAIN or BAG-LRG-COTTONBLEN-FLOWERS.
// Callers must only use it to fill an empty SkuCode.
func BuildSkuCode(size *ProductSize, fabricType *FabricType, printPattern *PrintPattern) string {
	sizeCode := strings.ToUpper(size.Code)
	fabricCode := normalizeSkuPart(fabricType.Name, 10)
	printCode := "PLAIN"
	if printPattern != nil {
		printCode = normalizeSkuPart(printPattern.Name, 12)
	}
	return fmt.Sprintf("BAG-%s-%s-%s", sizeCode, fabricCode, printCode)
}

// normalizeSkuPart uppercases the name, strips anything that is not a
// letter or digit and truncates the result to max bytes.
func normalizeSkuPart(name string, max int) string {
	s := strings.ToUpper(strings.TrimSpace(name))
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	out := b.String()
	if len(out) > max {
		out = out[:max]
	}
	return out
}
