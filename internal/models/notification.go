package models

import "time"

type Notification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Title   string `gorm:"size:100;not null" json:"title"`
	Message string `gorm:"size:500;not null" json:"message"`
	Type    string `gorm:"size:30;not null" json:"type"`

	Read bool `gorm:"default:false" json:"read"`

	RelatedAppointmentID *uint `gorm:"index" json:"related_appointment_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

const (
	NotificationInfo                 = "INFO"
	NotificationSuccess              = "SUCCESS"
	NotificationWarning              = "WARNING"
	NotificationError                = "ERROR"
	NotificationAppointmentReminder  = "APPOINTMENT_REMINDER"
	NotificationAppointmentCancelled = "APPOINTMENT_CANCELLED"
	NotificationAppointmentConfirmed = "APPOINTMENT_CONFIRMED"
)
