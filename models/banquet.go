package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	BanquetStatusConfirmed = "confirmed"
	BanquetStatusCompleted = "completed"
	BanquetStatusCancelled = "cancelled"
)

type BanquetHall struct {
	gorm.Model

	Name        string         `json:"name" gorm:"size:255;uniqueIndex"`
	Capacity    int            `json:"capacity"`
	Rate        float64        `json:"rate"` // per hour
	Amenities   datatypes.JSON `json:"amenities" gorm:"column:amenities"`
	Description string         `json:"description" gorm:"type:text"`
}

// BanquetBooking reserves a hall for a single event date. It contributes to
// revenue only on that date.
type BanquetBooking struct {
	gorm.Model

	HallID uint `gorm:"index;column:hall_id" json:"hallId"`

	EventName   string  `json:"eventName" gorm:"column:event_name;size:255"`
	ContactName string  `json:"contactName" gorm:"column:contact_name;size:255"`
	Date        string  `json:"date" gorm:"type:varchar(10);index"`
	StartTime   string  `json:"startTime" gorm:"column:start_time;type:varchar(5)"`
	EndTime     string  `json:"endTime" gorm:"column:end_time;type:varchar(5)"`
	Attendees   int     `json:"attendees"`
	TotalAmount float64 `json:"totalAmount" gorm:"column:total_amount"`
	Status      string  `json:"status" gorm:"size:32;default:confirmed"`

	Hall BanquetHall `gorm:"foreignKey:HallID;references:ID" json:"hall,omitempty"`
}
