package models

import "time"

type OrderItem struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OrderID uint `gorm:"not null;index" json:"order_id"`
	// Order is omitted from JSON to avoid recursive nesting.
	Order      Order    `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	MenuItemID uint     `gorm:"not null" json:"menu_item_id"`
	MenuItem   MenuItem `gorm:"foreignKey:MenuItemID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"menu_item"`
	Quantity   int      `gorm:"not null" json:"quantity"`
	// PriceAtTime is the menu price snapshot taken at order creation. Menu
	// price changes never touch it.
	PriceAtTime Money     `gorm:"type:decimal(10,2);not null" json:"price_at_time"`
	Notes       string    `gorm:"type:text" json:"notes"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}
