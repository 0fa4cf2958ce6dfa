package models

import "time"

// Cliente do salão, sem login próprio.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string  `gorm:"size:100;not null" json:"name"`
	Phone    string  `gorm:"size:20;uniqueIndex;not null" json:"phone"`
	Birthday *string `gorm:"size:10" json:"birthday"`
	Email    string  `gorm:"size:100" json:"email"`
	Address  string  `gorm:"size:255" json:"address"`
	Notes    string  `gorm:"size:255" json:"notes"`

	// Quantidade de serviços concluídos, incrementada ao completar agendamento.
	ServiceCount int  `gorm:"default:0" json:"service_count"`
	Active       bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
