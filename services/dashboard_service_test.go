package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pavankkodange/HMAPP/models"
)

func TestComputeSnapshotEmptyInput(t *testing.T) {
	snapshot := ComputeSnapshot(SnapshotInput{}, "2024-01-22")

	assert.Equal(t, "2024-01-22", snapshot.Date)
	assert.Equal(t, "2024-01", snapshot.Month)
	assert.Zero(t, snapshot.TotalRooms)
	assert.Zero(t, snapshot.OccupiedRooms)
	assert.Zero(t, snapshot.DirtyRooms)
	assert.Zero(t, snapshot.CleanRooms)
	assert.Zero(t, snapshot.TodayCheckIns)
	assert.Zero(t, snapshot.TodayCheckOuts)
	assert.Zero(t, snapshot.ActiveBanquets)
	assert.Zero(t, snapshot.AvailableTables)
	assert.Zero(t, snapshot.OccupiedTables)
	assert.Zero(t, snapshot.PendingRoomService)
	assert.Zero(t, snapshot.TodayRevenue)
	assert.Zero(t, snapshot.MonthRevenue)
}

func TestComputeSnapshotRoomCounts(t *testing.T) {
	in := SnapshotInput{
		Rooms: []models.Room{
			{Number: "101", Status: models.RoomStatusOccupied},
			{Number: "102", Status: models.RoomStatusDirty},
			{Number: "103", Status: models.RoomStatusClean},
			{Number: "104", Status: models.RoomStatusClean},
			{Number: "105", Status: models.RoomStatusMaintenance},
			{Number: "106", Status: models.RoomStatusOutOfOrder},
		},
	}

	snapshot := ComputeSnapshot(in, "2024-01-22")

	assert.Equal(t, 6, snapshot.TotalRooms)
	assert.Equal(t, 1, snapshot.OccupiedRooms)
	assert.Equal(t, 1, snapshot.DirtyRooms)
	assert.Equal(t, 2, snapshot.CleanRooms)
}

func TestComputeSnapshotChargeTodayCountsOnce(t *testing.T) {
	// Check-in in the past, charge posted today: the charge total counts
	// toward today and, because the check-in month matches, toward the month.
	in := SnapshotInput{
		Bookings: []models.Booking{
			{
				CheckIn:  "2024-01-01",
				CheckOut: "2024-01-25",
				Charges: []models.RoomCharge{
					{Amount: 100, Date: "2024-01-22"},
				},
			},
		},
	}

	snapshot := ComputeSnapshot(in, "2024-01-22")

	assert.InDelta(t, 100.0, snapshot.TodayRevenue, 1e-9)
	assert.InDelta(t, 100.0, snapshot.MonthRevenue, 1e-9)
}

func TestComputeSnapshotCheckInAndChargeSameDayAddsOnce(t *testing.T) {
	// Both conditions true for the same booking: the charge total is still
	// added exactly once per window.
	in := SnapshotInput{
		Bookings: []models.Booking{
			{
				CheckIn:  "2024-01-22",
				CheckOut: "2024-01-24",
				Charges: []models.RoomCharge{
					{Amount: 50, Date: "2024-01-22"},
				},
			},
		},
	}

	snapshot := ComputeSnapshot(in, "2024-01-22")

	assert.Equal(t, 1, snapshot.TodayCheckIns)
	assert.InDelta(t, 50.0, snapshot.TodayRevenue, 1e-9)
	assert.InDelta(t, 50.0, snapshot.MonthRevenue, 1e-9)
}

func TestComputeSnapshotMonthBoundary(t *testing.T) {
	// Check-in in January, charge in February, today in February: the charge
	// month alone pulls the booking total into February's revenue.
	in := SnapshotInput{
		Bookings: []models.Booking{
			{
				CheckIn:  "2024-01-31",
				CheckOut: "2024-02-02",
				Charges: []models.RoomCharge{
					{Amount: 120, Date: "2024-02-01"},
				},
			},
		},
	}

	snapshot := ComputeSnapshot(in, "2024-02-01")

	assert.InDelta(t, 120.0, snapshot.TodayRevenue, 1e-9)
	assert.InDelta(t, 120.0, snapshot.MonthRevenue, 1e-9)
}

func TestComputeSnapshotCheckInCountersAndCancelledStillCounted(t *testing.T) {
	in := SnapshotInput{
		Bookings: []models.Booking{
			{CheckIn: "2024-01-22", CheckOut: "2024-01-23", Status: models.BookingStatusConfirmed},
			{CheckIn: "2024-01-20", CheckOut: "2024-01-22", Status: models.BookingStatusCheckedIn},
			// Status does not gate the date counters.
			{CheckIn: "2024-01-22", CheckOut: "2024-01-23", Status: models.BookingStatusCancelled},
		},
	}

	snapshot := ComputeSnapshot(in, "2024-01-22")

	assert.Equal(t, 2, snapshot.TodayCheckIns)
	assert.Equal(t, 1, snapshot.TodayCheckOuts)
}

func TestComputeSnapshotBanquetRevenue(t *testing.T) {
	in := SnapshotInput{
		BanquetBookings: []models.BanquetBooking{
			{Date: "2024-01-22", TotalAmount: 1000},
			{Date: "2024-01-10", TotalAmount: 500},
			{Date: "2023-12-31", TotalAmount: 900},
		},
	}

	snapshot := ComputeSnapshot(in, "2024-01-22")

	assert.Equal(t, 1, snapshot.ActiveBanquets)
	assert.InDelta(t, 1000.0, snapshot.TodayRevenue, 1e-9)
	assert.InDelta(t, 1500.0, snapshot.MonthRevenue, 1e-9)
}

func TestComputeSnapshotRoomServiceDateDerivation(t *testing.T) {
	in := SnapshotInput{
		RoomServiceOrders: []models.RoomServiceOrder{
			{OrderTime: "2024-01-22T14:30:00Z", Total: 45, Status: models.OrderStatusDelivered},
			// Just before midnight the previous day: not today's revenue.
			{OrderTime: "2024-01-22T23:59:59Z", Total: 30, Status: models.OrderStatusDelivered},
		},
	}

	snapshot := ComputeSnapshot(in, "2024-01-23")

	assert.Zero(t, snapshot.TodayRevenue)
	assert.InDelta(t, 75.0, snapshot.MonthRevenue, 1e-9)

	snapshot = ComputeSnapshot(in, "2024-01-22")
	assert.InDelta(t, 75.0, snapshot.TodayRevenue, 1e-9)
}

func TestComputeSnapshotPendingRoomService(t *testing.T) {
	in := SnapshotInput{
		RoomServiceOrders: []models.RoomServiceOrder{
			{OrderTime: "2024-01-22T10:00:00Z", Status: models.OrderStatusPending},
			{OrderTime: "2024-01-22T10:05:00Z", Status: models.OrderStatusConfirmed},
			{OrderTime: "2024-01-22T10:10:00Z", Status: models.OrderStatusPreparing},
			{OrderTime: "2024-01-22T10:15:00Z", Status: models.OrderStatusDelivered},
			{OrderTime: "2024-01-22T10:20:00Z", Status: models.OrderStatusCancelled},
		},
	}

	snapshot := ComputeSnapshot(in, "2024-01-22")

	assert.Equal(t, 3, snapshot.PendingRoomService)
}

func TestComputeSnapshotTableCounts(t *testing.T) {
	in := SnapshotInput{
		RestaurantTables: []models.RestaurantTable{
			{Number: "T1", Status: models.TableStatusAvailable},
			{Number: "T2", Status: models.TableStatusAvailable},
			{Number: "T3", Status: models.TableStatusOccupied},
			{Number: "T4", Status: models.TableStatusReserved},
			{Number: "T5", Status: models.TableStatusCleaning},
		},
	}

	snapshot := ComputeSnapshot(in, "2024-01-22")

	assert.Equal(t, 2, snapshot.AvailableTables)
	assert.Equal(t, 1, snapshot.OccupiedTables)
}

func TestComputeSnapshotCombinedSources(t *testing.T) {
	in := SnapshotInput{
		Bookings: []models.Booking{
			{
				CheckIn:  "2024-01-22",
				CheckOut: "2024-01-24",
				Charges: []models.RoomCharge{
					{Amount: 200, Date: "2024-01-22"},
					{Amount: 35.5, Date: "2024-01-22"},
				},
			},
		},
		BanquetBookings: []models.BanquetBooking{
			{Date: "2024-01-22", TotalAmount: 1200},
		},
		RoomServiceOrders: []models.RoomServiceOrder{
			{OrderTime: "2024-01-22T19:00:00Z", Total: 64.5, Status: models.OrderStatusDelivered},
		},
	}

	snapshot := ComputeSnapshot(in, "2024-01-22")

	assert.InDelta(t, 1500.0, snapshot.TodayRevenue, 1e-9)
	assert.InDelta(t, 1500.0, snapshot.MonthRevenue, 1e-9)
}

func TestOccupancyRate(t *testing.T) {
	tests := []struct {
		name     string
		occupied int
		total    int
		want     string
	}{
		{name: "no rooms", occupied: 0, total: 0, want: "0.0"},
		{name: "quarter", occupied: 1, total: 4, want: "25.0"},
		{name: "full", occupied: 10, total: 10, want: "100.0"},
		{name: "third", occupied: 1, total: 3, want: "33.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OccupancyRate(tt.occupied, tt.total))
		})
	}
}
