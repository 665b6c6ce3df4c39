package models

import "time"

type MenuCategory struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"type:varchar(100);not null" json:"name"`
	Slug      string     `gorm:"type:varchar(100);unique;not null" json:"slug"`
	SortOrder int        `gorm:"not null;default:0" json:"sort_order"`
	MenuItems []MenuItem `gorm:"foreignKey:CategoryID" json:"menu_items,omitempty"`
	CreatedAt time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time  `gorm:"not null" json:"updated_at"`
}
