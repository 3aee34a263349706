package models

import "time"

// ScheduleException overrides the weekly availability for one date.
// StylistID nil means the exception applies to every stylist. A nil time
// window means the whole day.
type ScheduleException struct {
	ID uint `gorm:"primaryKey" json:"id"`

	StylistID *uint `gorm:"index" json:"stylist_id,omitempty"`
	Stylist   *User `gorm:"foreignKey:StylistID" json:"-"`

	Date time.Time `gorm:"type:date;index;not null" json:"date"`

	// "15:04" strings, both set or both empty.
	StartTime *string `gorm:"size:5" json:"start_time,omitempty"`
	EndTime   *string `gorm:"size:5" json:"end_time,omitempty"`

	Type   string `gorm:"size:20;not null" json:"type"`
	Reason string `gorm:"size:255" json:"reason"`

	AdministratorID uint `gorm:"not null" json:"administrator_id"`
	Administrator   User `gorm:"foreignKey:AdministratorID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	ExceptionAvailable   = "AVAILABLE"
	ExceptionUnavailable = "UNAVAILABLE"
)
