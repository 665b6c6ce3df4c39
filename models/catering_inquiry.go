package models

import "time"

type CateringInquiry struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	Email      string    `gorm:"type:varchar(255);not null" json:"email"`
	Phone      string    `gorm:"type:varchar(50);not null" json:"phone"`
	EventDate  time.Time `gorm:"not null" json:"event_date"`
	GuestCount int       `gorm:"not null" json:"guest_count"`
	Message    string    `gorm:"type:text" json:"message"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
}
