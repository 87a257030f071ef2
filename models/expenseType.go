package models

import "time"

type ExpenseType struct {
	ID        int       `gorm:"primary_key" json:"id"`
	Name      string    `gorm:"size:120;not null;uniqueIndex" json:"name"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
