package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a business expense. For upsert purposes an expense is
// identified by (type, amount, date); a second legitimate expense with
// the same three values cannot be represented, which is an accepted
// limitation of the seeding contract.
type Expense struct {
	ID            int             `gorm:"primary_key" json:"id"`
	ExpenseTypeId int             `gorm:"not null;index" json:"expense_type_id"`
	ExpenseType   ExpenseType     `gorm:"constraint:OnDelete:RESTRICT" json:"expense_type"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Currency      string          `gorm:"size:10;not null;default:EGP" json:"currency"`
	ExpenseDate   time.Time       `gorm:"type:date;not null;index" json:"expense_date"`
	Vendor        string          `gorm:"size:120" json:"vendor"`
	Notes         string          `gorm:"type:text" json:"notes"`
	RefTable      *string         `gorm:"size:50" json:"ref_table"`
	RefId         *string         `gorm:"size:50" json:"ref_id"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}
