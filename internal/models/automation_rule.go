package models

import "time"

const (
	AutomationTriggerAppointmentCreated  = "appointment_created"
	AutomationTriggerAppointmentReminder = "appointment_reminder"
	AutomationTriggerBirthday            = "birthday"

	AutomationChannelWhatsApp = "whatsapp"
	AutomationChannelEmail    = "email"
)

type AutomationRule struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Trigger string `gorm:"size:30;not null" json:"trigger"`
	Channel string `gorm:"size:20;not null" json:"channel"`
	Message string `gorm:"size:500;not null" json:"message"`
	Active  bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
