package models

import "time"

const (
	EntryKindIncome  = "income"
	EntryKindExpense = "expense"

	EntrySourceService = "service"
	EntrySourceProduct = "product"
	EntrySourceGeneral = "general"
)

type FinancialEntry struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Kind        string  `gorm:"size:10;not null" json:"kind"`
	Source      string  `gorm:"size:10;default:'general'" json:"source"`
	Value       float64 `gorm:"not null" json:"value"`
	Date        string  `gorm:"size:10;not null" json:"date"`
	Description string  `gorm:"size:255;not null" json:"description"`
	Category    string  `gorm:"size:50" json:"category"`
	Quantity    int     `gorm:"default:1" json:"quantity"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
