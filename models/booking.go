package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	BookingStatusConfirmed  = "confirmed"
	BookingStatusCheckedIn  = "checked-in"
	BookingStatusCheckedOut = "checked-out"
	BookingStatusCancelled  = "cancelled"
	BookingStatusNoShow     = "no-show"
)

// Booking links a guest to a room for a date range. Check-in/out are stored
// as calendar dates (YYYY-MM-DD); all revenue windows compare on that form.
//
// TotalAmount is the creation-time estimate (nightly rate x nights). The
// authoritative bill at any point is the sum of Charges, which diverges from
// the estimate once extras are posted.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ReferenceCode string `gorm:"column:reference_code;size:64;uniqueIndex" json:"referenceCode"`

	GuestID uint `gorm:"index;column:guest_id" json:"guestId"`
	RoomID  uint `gorm:"index;column:room_id" json:"roomId"`

	CheckIn  string `gorm:"column:check_in;type:varchar(10);index" json:"checkIn"`
	CheckOut string `gorm:"column:check_out;type:varchar(10);index" json:"checkOut"`

	Status      string  `gorm:"column:status;size:32;default:confirmed" json:"status"`
	Adults      int     `gorm:"column:adults;default:1" json:"adults"`
	Children    int     `gorm:"column:children;default:0" json:"children"`
	Currency    string  `gorm:"column:currency;size:3" json:"currency"`
	TotalAmount float64 `gorm:"column:total_amount" json:"totalAmount"`

	Guest   Guest        `gorm:"foreignKey:GuestID;references:ID" json:"guest,omitempty"`
	Room    Room         `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
	Charges []RoomCharge `gorm:"foreignKey:BookingID" json:"charges"`
}

// RoomCharge is one billable line on a booking's folio.
type RoomCharge struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"createdAt"`

	BookingID uint `gorm:"index;column:booking_id" json:"bookingId"`

	Description string  `json:"description" gorm:"size:255"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency" gorm:"size:3"`
	Date        string  `json:"date" gorm:"type:varchar(10);index"`
	Category    string  `json:"category" gorm:"size:50"`
}

func IsValidBookingStatus(status string) bool {
	switch status {
	case BookingStatusConfirmed, BookingStatusCheckedIn, BookingStatusCheckedOut,
		BookingStatusCancelled, BookingStatusNoShow:
		return true
	}
	return false
}

// ChargeTotal is the authoritative folio total.
func (b Booking) ChargeTotal() float64 {
	var sum float64
	for _, charge := range b.Charges {
		sum += charge.Amount
	}
	return sum
}
