package models

import "time"

type MenuItem struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	CategoryID   uint         `gorm:"not null;index" json:"category_id"`
	Category     MenuCategory `gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Name         string       `gorm:"type:varchar(255);not null" json:"name"`
	Description  string       `gorm:"type:text" json:"description"`
	Price        Money        `gorm:"type:decimal(10,2);not null" json:"price"`
	ImageURL     string       `gorm:"type:varchar(255)" json:"image_url"`
	IsPopular    bool         `gorm:"not null;default:false" json:"is_popular"`
	IsVegetarian bool         `gorm:"not null;default:false" json:"is_vegetarian"`
	IsSpicy      bool         `gorm:"not null;default:false" json:"is_spicy"`
	CreatedAt    time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time    `gorm:"not null" json:"updated_at"`
}
