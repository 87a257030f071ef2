package models

import "time"

type ProductSize struct {
	ID          int       `gorm:"primary_key" json:"id"`
	Code        string    `gorm:"size:20;not null;uniqueIndex" json:"code"`
	DisplayName string    `gorm:"size:50;not null" json:"display_name"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
