package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	TableStatusAvailable = "available"
	TableStatusOccupied  = "occupied"
	TableStatusReserved  = "reserved"
	TableStatusCleaning  = "cleaning"
)

// Room service order lifecycle. Orders in the first three states count as
// pending work for the kitchen.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusPreparing = "preparing"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

type RestaurantTable struct {
	gorm.Model

	Number string `json:"number" gorm:"column:table_number;uniqueIndex;type:varchar(20)"`
	Seats  int    `json:"seats"`
	Status string `json:"status" gorm:"size:20;default:available"`
}

// RoomServiceOrder is a kitchen order delivered to a guest room. OrderTime
// keeps the full ISO timestamp; aggregation uses only its date portion.
type RoomServiceOrder struct {
	gorm.Model

	RoomID uint `gorm:"index;column:room_id" json:"roomId"`

	// Line items [{name, quantity, price}] as sent by the order screen.
	Items     datatypes.JSON `json:"items" gorm:"column:items"`
	Total     float64        `json:"total"`
	Status    string         `json:"status" gorm:"size:20;default:pending"`
	OrderTime string         `json:"orderTime" gorm:"column:order_time;type:varchar(25);index"`
	Notes     string         `json:"notes" gorm:"type:text"`

	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
}

func IsValidTableStatus(status string) bool {
	switch status {
	case TableStatusAvailable, TableStatusOccupied, TableStatusReserved, TableStatusCleaning:
		return true
	}
	return false
}

func IsValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// IsOpenOrder reports whether the order still needs kitchen attention.
func IsOpenOrder(status string) bool {
	return status == OrderStatusPending || status == OrderStatusConfirmed || status == OrderStatusPreparing
}
