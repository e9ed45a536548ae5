package models

import (
	"time"

	"gorm.io/gorm"
)

type Guest struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name    string `json:"name" gorm:"size:255"`
	Email   string `json:"email" gorm:"size:150;index"`
	Phone   string `json:"phone" gorm:"size:50"`
	Address string `json:"address" gorm:"type:text"`

	IDNumber    string `json:"idNumber" gorm:"column:id_number;size:100"`
	Nationality string `json:"nationality" gorm:"size:100"`

	// Incremented on every completed checkout.
	TotalStays int    `json:"totalStays" gorm:"column:total_stays;default:0"`
	VIPTier    string `json:"vipTier,omitempty" gorm:"column:vip_tier;size:50"`
}
