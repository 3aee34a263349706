package models

import "time"

// Availability is a stylist's recurring open window for one weekday.
// At most one row exists per (stylist, weekday); enforced by a pre-check
// on creation.
type Availability struct {
	ID uint `gorm:"primaryKey" json:"id"`

	StylistID uint `gorm:"index;not null" json:"stylist_id"`
	Stylist   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	// Weekday follows time.Weekday (0 = Sunday .. 6 = Saturday).
	Weekday int `gorm:"not null" json:"weekday"`

	// StartTime and EndTime are "15:04" strings; start < end.
	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
