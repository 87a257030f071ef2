package seeder

import (
	"errors"

	"bitbucket.org/nileloom/bagops_backend/models"
	"bitbucket.org/nileloom/bagops_backend/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func (s *Seeder) resolveExpenseType(tx *gorm.DB, name string) (*models.ExpenseType, error) {
	var expenseType models.ExpenseType
	err := tx.Where("name = ?", name).First(&expenseType).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFoundf("expense type", name)
	}
	if err != nil {
		return nil, err
	}
	return &expenseType, nil
}

// seedExpenses upserts expenses keyed by (type, amount, date). Two
// expenses sharing those three values are the same expense to this
// procedure; currency, vendor and notes are overwritten on a match.
func (s *Seeder) seedExpenses(tx *gorm.DB, fx *Fixture) error {
	for _, row := range fx.Expenses {
		expenseType, err := s.resolveExpenseType(tx, row.ExpenseType)
		if err != nil {
			return err
		}
		amount, err := parseAmount("expenses.amount", row.Amount, decimal.Zero)
		if err != nil {
			return err
		}
		expenseDate, err := parseDate("expenses.expense_date", row.ExpenseDate)
		if err != nil {
			return err
		}
		currency := utils.StringOrDefault(row.Currency, "EGP")

		var expense models.Expense
		err = tx.Where("expense_type_id = ? AND amount = ? AND expense_date = ?",
			expenseType.ID, amount, expenseDate).First(&expense).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			expense = models.Expense{
				ExpenseTypeId: expenseType.ID,
				Amount:        amount,
				Currency:      currency,
				ExpenseDate:   expenseDate,
				Vendor:        row.Vendor,
				Notes:         row.Notes,
			}
			if err := tx.Create(&expense).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			if err := tx.Model(&expense).Updates(map[string]any{
				"currency": currency,
				"vendor":   row.Vendor,
				"notes":    row.Notes,
			}).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
