package models

import "time"

type Studio struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Slug        string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Description string `gorm:"type:text" json:"description"`
	Address     string `gorm:"size:255" json:"address"`
	Phone       string `gorm:"size:20" json:"phone"`

	// HH:MM, same-day window
	OpeningTime string `gorm:"size:5;not null;default:'09:00'" json:"opening_time"`
	ClosingTime string `gorm:"size:5;not null;default:'18:00'" json:"closing_time"`

	HourlyRate float64 `json:"hourly_rate"`
	Active     bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
