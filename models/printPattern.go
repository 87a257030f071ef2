package models

import "time"

// PrintPattern is a named print applied to fabric. A SKU or fabric
// material with no pattern is "plain", which is a real domain state:
// the foreign keys referencing this table are nullable on purpose.
type PrintPattern struct {
	ID        int       `gorm:"primary_key" json:"id"`
	Name      string    `gorm:"size:120;not null;uniqueIndex" json:"name"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
