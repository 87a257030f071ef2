package seeder

import (
	"errors"

	"bitbucket.org/nileloom/bagops_backend/models"
	"bitbucket.org/nileloom/bagops_backend/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// resolveFabricMaterial finds or creates the material variant keyed by
// (fabric type, uom, printed, pattern). The pattern enters the key
// only when printed is true; raw materials never carry a pattern, even
// if the fixture row named one.
func (s *Seeder) resolveFabricMaterial(tx *gorm.DB, fabricName, uom string, isPrinted bool, patternName *string) (*models.FabricMaterial, error) {
	fabric, err := s.resolveFabric(tx, fabricName)
	if err != nil {
		return nil, err
	}

	var pattern *models.PrintPattern
	if isPrinted {
		if patternName == nil {
			return nil, malformedf("fabric_materials.print_pattern", "",
				errors.New("printed fabric material requires a print pattern"))
		}
		pattern, err = s.resolvePattern(tx, patternName)
		if err != nil {
			return nil, err
		}
	}
	uom = utils.StringOrDefault(uom, "meter")

	query := tx.Where("fabric_type_id = ? AND uom = ? AND is_printed = ?", fabric.ID, uom, isPrinted)
	if pattern == nil {
		query = query.Where("print_pattern_id IS NULL")
	} else {
		query = query.Where("print_pattern_id = ?", pattern.ID)
	}

	var material models.FabricMaterial
	err = query.First(&material).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		material = models.FabricMaterial{
			FabricTypeId: fabric.ID,
			Uom:          uom,
			IsPrinted:    isPrinted,
		}
		if pattern != nil {
			material.PrintPatternId = &pattern.ID
		}
		if err := tx.Create(&material).Error; err != nil {
			return nil, err
		}
		return &material, nil
	}
	if err != nil {
		return nil, err
	}
	return &material, nil
}

// seedFabrics creates the material variants, then full-replaces the
// fabric balances keyed by (material, location).
func (s *Seeder) seedFabrics(tx *gorm.DB, fx *Fixture) error {
	for _, row := range fx.FabricMaterials {
		if _, err := s.resolveFabricMaterial(tx, row.FabricType, row.Uom,
			utils.BoolOrDefault(row.IsPrinted, false), row.PrintPattern); err != nil {
			return err
		}
	}

	for _, row := range fx.FabricInventory {
		material, err := s.resolveFabricMaterial(tx, row.FabricType, row.Uom,
			utils.BoolOrDefault(row.IsPrinted, false), row.PrintPattern)
		if err != nil {
			return err
		}
		location, err := s.resolveLocation(tx, row.Location)
		if err != nil {
			return err
		}
		qty, err := parseAmount("fabric_inventory.qty_on_hand", row.QtyOnHand, decimal.Zero)
		if err != nil {
			return err
		}

		var balance models.FabricInventory
		err = tx.Where("fabric_material_id = ? AND location_id = ?", material.ID, location.ID).First(&balance).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			balance = models.FabricInventory{
				FabricMaterialId: material.ID,
				LocationId:       location.ID,
				QtyOnHand:        qty,
			}
			if err := tx.Create(&balance).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			if err := tx.Model(&balance).Updates(map[string]any{
				"qty_on_hand": qty,
			}).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
