package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleAdmin        = "admin"
	RoleManager      = "manager"
	RoleFrontDesk    = "front-desk"
	RoleHousekeeping = "housekeeping"
	RoleRestaurant   = "restaurant"
)

// User is a staff account. Email is the login identity.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:255" json:"name"`
	Email     string         `gorm:"uniqueIndex;size:150" json:"email"`
	Password  string         `gorm:"size:255" json:"-"` // bcrypt hash, never returned in JSON
	Role      string         `gorm:"size:32" json:"role"`
	IsActive  bool           `gorm:"column:is_active;default:true" json:"isActive"`
	LastLogin *time.Time     `gorm:"column:last_login" json:"lastLogin,omitempty"`

	Department       string `gorm:"size:100" json:"department,omitempty"`
	PhoneNumber      string `gorm:"size:50" json:"phoneNumber,omitempty"`
	EmergencyContact string `gorm:"size:50" json:"emergencyContact,omitempty"`
	Notes            string `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleFrontDesk, RoleHousekeeping, RoleRestaurant:
		return true
	}
	return false
}
