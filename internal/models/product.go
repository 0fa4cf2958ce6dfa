package models

import "time"

type Product struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	Cost        float64 `gorm:"default:0" json:"cost"`
	Stock       int     `gorm:"not null;default:0" json:"stock"`
	MinStock    int     `gorm:"default:5" json:"min_stock"`
	Category    string  `gorm:"size:50;not null" json:"category"`
	Brand       string  `gorm:"size:50" json:"brand"`
	ImageURL    string  `gorm:"size:255" json:"image_url"`
	Active      bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
