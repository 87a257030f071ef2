package models

import "time"

type OrderStatus struct {
	ID          int       `gorm:"primary_key" json:"id"`
	Code        string    `gorm:"size:40;not null;uniqueIndex" json:"code"`
	DisplayName string    `gorm:"size:80;not null" json:"display_name"`
	SortOrder   int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
