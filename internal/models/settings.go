package models

import "time"

// SalonSettings é uma linha única com as configurações gerais do salão.
type SalonSettings struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SalonName string `gorm:"size:100" json:"salon_name"`
	Phone     string `gorm:"size:20" json:"phone"`
	Email     string `gorm:"size:100" json:"email"`
	Address   string `gorm:"size:255" json:"address"`
	Timezone  string `gorm:"size:50" json:"timezone"`
	OpenTime  string `gorm:"size:5;default:'09:00'" json:"open_time"`
	CloseTime string `gorm:"size:5;default:'19:00'" json:"close_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoyaltySettings é uma linha única com as regras do clube de fidelidade.
type LoyaltySettings struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Enabled          bool    `gorm:"default:false" json:"enabled"`
	PointsPerService int     `gorm:"default:10" json:"points_per_service"`
	PointsPerEuro    float64 `gorm:"default:1" json:"points_per_euro"`
	RedeemThreshold  int     `gorm:"default:100" json:"redeem_threshold"`
	RewardText       string  `gorm:"size:255" json:"reward_text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
