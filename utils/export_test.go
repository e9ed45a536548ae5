package utils

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavankkodange/HMAPP/models"
)

func plainFormatter(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

func TestBuildBillPDF(t *testing.T) {
	booking := &models.Booking{
		ReferenceCode: "BK-TEST1234",
		CheckIn:       "2024-01-20",
		CheckOut:      "2024-01-22",
		Guest:         models.Guest{Name: "Jane Doe"},
		Room:          models.Room{Number: "204", Type: "deluxe"},
		Charges: []models.RoomCharge{
			{Description: "Room charge", Amount: 120, Date: "2024-01-20", Category: "room"},
			{Description: "Mini bar", Amount: 18.5, Date: "2024-01-21", Category: "minibar"},
		},
	}

	data, err := BuildBillPDF(booking, models.HotelSetting{Name: "Harmony Suites"}, plainFormatter)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestBuildBookingsXLSX(t *testing.T) {
	bookings := []models.Booking{
		{
			ReferenceCode: "BK-A",
			CheckIn:       "2024-01-20",
			CheckOut:      "2024-01-22",
			Status:        models.BookingStatusCheckedOut,
			TotalAmount:   240,
			Guest:         models.Guest{Name: "Jane Doe"},
			Room:          models.Room{Number: "204"},
			Charges:       []models.RoomCharge{{Amount: 240, Date: "2024-01-20"}},
		},
	}
	snapshot := models.DashboardSnapshot{Date: "2024-01-22", TodayRevenue: 240, MonthRevenue: 240, TotalRooms: 10, OccupiedRooms: 3}

	data, err := BuildBookingsXLSX(bookings, snapshot)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
