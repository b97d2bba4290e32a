package models

import "time"

type Mission struct {
	ID         uint64    `gorm:"primarykey" json:"id"`
	Title      string    `gorm:"type:varchar(255);not null" json:"title"`
	Category   *string   `gorm:"type:varchar(100)" json:"category"`
	Difficulty string    `gorm:"type:varchar(20);not null;default:'easy'" json:"difficulty"`
	XP         int       `gorm:"column:xp;not null;default:0" json:"xp"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
