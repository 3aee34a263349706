package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string `gorm:"size:100;not null" json:"name"`
	Email    string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Username string `gorm:"size:50" json:"username,omitempty"`

	PasswordHash string `gorm:"size:255" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`

	Role   string `gorm:"size:20;default:'CLIENT'" json:"role"`
	Active bool   `gorm:"default:true" json:"active"`

	// Services a stylist performs; empty for clients and admins. Served by
	// the stylist-services endpoints, not embedded in user payloads.
	Services []ServiceOffer `gorm:"many2many:stylist_services;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	RoleClient  = "CLIENT"
	RoleStylist = "STYLIST"
	RoleAdmin   = "ADMIN"
)

func IsValidRole(role string) bool {
	switch role {
	case RoleClient, RoleStylist, RoleAdmin:
		return true
	}
	return false
}
