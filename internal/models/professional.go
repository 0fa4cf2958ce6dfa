package models

import "time"

type Professional struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name       string `gorm:"size:100;not null" json:"name"`
	Email      string `gorm:"size:100;not null;uniqueIndex:idx_professionals_contact" json:"email"`
	Phone      string `gorm:"size:20;not null;uniqueIndex:idx_professionals_contact" json:"phone"`
	Bio        string `gorm:"size:255" json:"bio"`
	Speciality string `gorm:"size:100" json:"speciality"`
	Color      string `gorm:"size:7;default:'#0ea5e9'" json:"color"`
	Active     bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
