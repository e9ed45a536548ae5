package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Room statuses as used by housekeeping and the front desk. Operations never
// delete a room, they re-status it; DELETE is an admin action.
const (
	RoomStatusClean       = "clean"
	RoomStatusDirty       = "dirty"
	RoomStatusOccupied    = "occupied"
	RoomStatusOutOfOrder  = "out-of-order"
	RoomStatusMaintenance = "maintenance"
)

type Room struct {
	gorm.Model

	Number string `json:"number" gorm:"column:room_number;uniqueIndex;type:varchar(50)"`

	Type         string  `json:"type" gorm:"type:varchar(50)"`
	Status       string  `json:"status" gorm:"type:varchar(20);default:clean"`
	Floor        string  `json:"floor" gorm:"type:varchar(10)"`
	Rate         float64 `json:"rate"`
	MaxOccupancy int     `json:"maxOccupancy" gorm:"column:max_occupancy"`
	Description  string  `json:"description" gorm:"type:text"`

	// Amenity names ("WiFi", "TV", ...) stored as a JSON array.
	Amenities      datatypes.JSON `json:"amenities" gorm:"column:amenities"`
	SmokingAllowed bool           `json:"smokingAllowed" gorm:"column:smoking_allowed;default:false"`
}

func IsValidRoomStatus(status string) bool {
	switch status {
	case RoomStatusClean, RoomStatusDirty, RoomStatusOccupied, RoomStatusOutOfOrder, RoomStatusMaintenance:
		return true
	}
	return false
}
