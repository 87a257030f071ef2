package seeder

import (
	"errors"

	"bitbucket.org/nileloom/bagops_backend/models"
	"bitbucket.org/nileloom/bagops_backend/utils"
	"gorm.io/gorm"
)

// seedReference upserts the seven reference tables. Each entity is an
// explicit read-by-natural-key then insert-or-update; the key tuples
// are the identity contracts:
//
//	ProductSize       code
//	FabricType        name
//	PrintPattern      name
//	InventoryLocation name
//	OrderStatus       code
//	Customer          full_name
//	ExpenseType       name
func (s *Seeder) seedReference(tx *gorm.DB, fx *Fixture) error {
	for _, row := range fx.ProductSizes {
		displayName := utils.StringOrDefault(row.DisplayName, row.Code)

		var size models.ProductSize
		err := tx.Where("code = ?", row.Code).First(&size).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			size = models.ProductSize{Code: row.Code, DisplayName: displayName}
			if err := tx.Create(&size).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			if err := tx.Model(&size).Updates(map[string]any{
				"display_name": displayName,
			}).Error; err != nil {
				return err
			}
		}
	}

	for _, row := range fx.FabricTypes {
		var fabric models.FabricType
		err := tx.Where("name = ?", row.Name).First(&fabric).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			fabric = models.FabricType{Name: row.Name, IsActive: utils.BoolOrDefault(row.IsActive, true)}
			if err := tx.Create(&fabric).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			if err := tx.Model(&fabric).Updates(map[string]any{
				"is_active": utils.BoolOrDefault(row.IsActive, true),
			}).Error; err != nil {
				return err
			}
		}
	}

	for _, row := range fx.PrintPatterns {
		var pattern models.PrintPattern
		err := tx.Where("name = ?", row.Name).First(&pattern).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			pattern = models.PrintPattern{Name: row.Name, IsActive: utils.BoolOrDefault(row.IsActive, true)}
			if err := tx.Create(&pattern).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			if err := tx.Model(&pattern).Updates(map[string]any{
				"is_active": utils.BoolOrDefault(row.IsActive, true),
			}).Error; err != nil {
				return err
			}
		}
	}

	for _, row := range fx.InventoryLocations {
		// Name is the whole record; nothing to update on a match.
		var location models.InventoryLocation
		err := tx.Where("name = ?", row.Name).First(&location).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			location = models.InventoryLocation{Name: row.Name}
			if err := tx.Create(&location).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		}
	}

	for _, row := range fx.OrderStatuses {
		displayName := utils.StringOrDefault(row.DisplayName, row.Code)

		var status models.OrderStatus
		err := tx.Where("code = ?", row.Code).First(&status).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			status = models.OrderStatus{Code: row.Code, DisplayName: displayName, SortOrder: row.SortOrder}
			if err := tx.Create(&status).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			if err := tx.Model(&status).Updates(map[string]any{
				"display_name": displayName,
				"sort_order":   row.SortOrder,
			}).Error; err != nil {
				return err
			}
		}
	}

	for _, row := range fx.Customers {
		var customer models.Customer
		err := tx.Where("full_name = ?", row.FullName).First(&customer).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			customer = models.Customer{
				FullName: row.FullName,
				Phone:    row.Phone,
				Email:    row.Email,
				Address:  row.Address,
			}
			if err := tx.Create(&customer).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			if err := tx.Model(&customer).Updates(map[string]any{
				"phone":   row.Phone,
				"email":   row.Email,
				"address": row.Address,
			}).Error; err != nil {
				return err
			}
		}
	}

	for _, row := range fx.ExpenseTypes {
		var expenseType models.ExpenseType
		err := tx.Where("name = ?", row.Name).First(&expenseType).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			expenseType = models.ExpenseType{Name: row.Name, IsActive: true}
			if err := tx.Create(&expenseType).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			if err := tx.Model(&expenseType).Updates(map[string]any{
				"is_active": true,
			}).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
