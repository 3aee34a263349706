package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceOffer is one entry of the salon's service catalog.
type ServiceOffer struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:500" json:"description"`

	// DurationMin is the expected duration in minutes.
	DurationMin int             `gorm:"not null" json:"duration_min"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
