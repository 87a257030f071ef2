package seeder

import (
	"errors"

	"bitbucket.org/nileloom/bagops_backend/models"
	"bitbucket.org/nileloom/bagops_backend/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func (s *Seeder) resolveSize(tx *gorm.DB, code string) (*models.ProductSize, error) {
	var size models.ProductSize
	err := tx.Where("code = ?", code).First(&size).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFoundf("product size", code)
	}
	if err != nil {
		return nil, err
	}
	return &size, nil
}

func (s *Seeder) resolveFabric(tx *gorm.DB, name string) (*models.FabricType, error) {
	var fabric models.FabricType
	err := tx.Where("name = ?", name).First(&fabric).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFoundf("fabric type", name)
	}
	if err != nil {
		return nil, err
	}
	return &fabric, nil
}

// resolvePattern maps nil to nil: absence of a pattern means plain.
func (s *Seeder) resolvePattern(tx *gorm.DB, name *string) (*models.PrintPattern, error) {
	if name == nil {
		return nil, nil
	}
	var pattern models.PrintPattern
	err := tx.Where("name = ?", *name).First(&pattern).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFoundf("print pattern", *name)
	}
	if err != nil {
		return nil, err
	}
	return &pattern, nil
}

func (s *Seeder) resolveLocation(tx *gorm.DB, name string) (*models.InventoryLocation, error) {
	var location models.InventoryLocation
	err := tx.Where("name = ?", name).First(&location).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFoundf("inventory location", name)
	}
	if err != nil {
		return nil, err
	}
	return &location, nil
}

// resolveSKU finds or creates the SKU for a dimension triple. On
// create the code is derived and the price starts at zero; an existing
// SKU with a blank code (legacy rows) gets its code backfilled, but a
// non-blank code is never rewritten.
func (s *Seeder) resolveSKU(tx *gorm.DB, ref SKURef) (*models.ProductSKU, error) {
	size, err := s.resolveSize(tx, ref.SizeCode)
	if err != nil {
		return nil, err
	}
	fabric, err := s.resolveFabric(tx, ref.FabricType)
	if err != nil {
		return nil, err
	}
	pattern, err := s.resolvePattern(tx, ref.PrintPattern)
	if err != nil {
		return nil, err
	}

	query := tx.Where("size_id = ? AND fabric_type_id = ?", size.ID, fabric.ID)
	if pattern == nil {
		query = query.Where("print_pattern_id IS NULL")
	} else {
		query = query.Where("print_pattern_id = ?", pattern.ID)
	}

	var sku models.ProductSKU
	err = query.First(&sku).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		sku = models.ProductSKU{
			SkuCode:      models.BuildSkuCode(size, fabric, pattern),
			SizeId:       size.ID,
			FabricTypeId: fabric.ID,
			UnitPrice:    decimal.Zero,
			IsActive:     true,
		}
		if pattern != nil {
			sku.PrintPatternId = &pattern.ID
		}
		if err := tx.Create(&sku).Error; err != nil {
			return nil, err
		}
		return &sku, nil
	}
	if err != nil {
		return nil, err
	}

	if sku.SkuCode == "" {
		sku.SkuCode = models.BuildSkuCode(size, fabric, pattern)
		if err := tx.Model(&models.ProductSKU{}).Where("id = ?", sku.ID).
			Update("sku_code", sku.SkuCode).Error; err != nil {
			return nil, err
		}
	}
	return &sku, nil
}

// seedSKUsAndInventory resolves/creates the requested SKUs, applying
// fixture prices authoritatively, and then full-replaces the
// finished-goods balances keyed by (sku, location).
func (s *Seeder) seedSKUsAndInventory(tx *gorm.DB, fx *Fixture) error {
	for _, row := range fx.ProductSKUs {
		sku, err := s.resolveSKU(tx, row.SKURef)
		if err != nil {
			return err
		}
		if row.UnitPrice == "" {
			continue
		}
		price, err := parseAmount("product_skus.unit_price", row.UnitPrice, decimal.Zero)
		if err != nil {
			return err
		}
		if err := tx.Model(&models.ProductSKU{}).Where("id = ?", sku.ID).Updates(map[string]any{
			"unit_price": price,
			"is_active":  utils.BoolOrDefault(row.IsActive, true),
		}).Error; err != nil {
			return err
		}
	}

	for _, row := range fx.InventoryBalances {
		sku, err := s.resolveSKU(tx, row.SKURef)
		if err != nil {
			return err
		}
		location, err := s.resolveLocation(tx, row.Location)
		if err != nil {
			return err
		}

		var balance models.InventoryBalance
		err = tx.Where("sku_id = ? AND location_id = ?", sku.ID, location.ID).First(&balance).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			balance = models.InventoryBalance{
				SkuId:        sku.ID,
				LocationId:   location.ID,
				QtyOnHand:    row.QtyOnHand,
				ReorderLevel: row.ReorderLevel,
			}
			if err := tx.Create(&balance).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			if err := tx.Model(&balance).Updates(map[string]any{
				"qty_on_hand":   row.QtyOnHand,
				"reorder_level": row.ReorderLevel,
			}).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
