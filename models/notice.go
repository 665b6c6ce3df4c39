package models

import "time"

// Notice is an announcement shown on the public site (holiday hours, specials).
type Notice struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Body        string    `gorm:"type:text" json:"body"`
	Active      bool      `gorm:"not null;default:true" json:"active"`
	PublishedAt time.Time `gorm:"not null" json:"published_at"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}
