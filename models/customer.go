package models

import "time"

type Customer struct {
	ID        int       `gorm:"primary_key" json:"id"`
	FullName  string    `gorm:"size:150;not null;uniqueIndex" json:"full_name"`
	Phone     string    `gorm:"size:30" json:"phone"`
	Email     string    `gorm:"size:254" json:"email"`
	Address   string    `gorm:"type:text" json:"address"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
