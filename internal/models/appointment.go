package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint `gorm:"index;not null" json:"client_id"`
	Client   User `gorm:"foreignKey:ClientID" json:"client"`

	StylistID uint `gorm:"index;not null" json:"stylist_id"`
	Stylist   User `gorm:"foreignKey:StylistID" json:"stylist"`

	Status string `gorm:"size:20;default:'CONFIRMED'" json:"status"`

	Date time.Time `gorm:"type:date;index;not null" json:"date"`

	// "15:04" strings; start < end, half-open interval [start, end).
	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	ClientPhone string `gorm:"size:20" json:"client_phone"`

	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_price"`

	Services []ServiceOffer `gorm:"many2many:appointment_services;" json:"services"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
