package models

import "time"

type InventoryLocation struct {
	ID        int       `gorm:"primary_key" json:"id"`
	Name      string    `gorm:"size:120;not null;uniqueIndex" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
