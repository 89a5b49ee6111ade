package models

import "gorm.io/gorm"

// Notification recipient types
const (
	RecipientAdmin      = "ADMIN"
	RecipientInstructor = "INSTRUCTOR"
)

// Notification is fire-and-forget. Only the read flag is ever mutated.
type Notification struct {
	gorm.Model
	RecipientID   uint   `gorm:"not null;index" json:"recipientId"`
	RecipientType string `gorm:"not null;type:varchar(20)" json:"recipientType"`
	EventType     string `gorm:"not null;type:varchar(40)" json:"eventType"`
	Title         string `gorm:"not null" json:"title"`
	Message       string `gorm:"type:text;default:''" json:"message"`
	IsRead        bool   `gorm:"default:false" json:"isRead"`
	IsDeleted     bool   `gorm:"default:false" json:"isDeleted"`
}

func (Notification) TableName() string {
	return "notifications"
}
