package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/pavankkodange/HMAPP/models"
	"github.com/pavankkodange/HMAPP/utils"
)

// SnapshotInput bundles the collections one dashboard refresh reads. The
// caller must hand over a consistent view; ComputeSnapshot never mutates it.
type SnapshotInput struct {
	Rooms             []models.Room
	Bookings          []models.Booking
	BanquetBookings   []models.BanquetBooking
	RestaurantTables  []models.RestaurantTable
	RoomServiceOrders []models.RoomServiceOrder
}

// ComputeSnapshot derives the dashboard summary for an explicit reference
// date (YYYY-MM-DD). The date is a parameter rather than the wall clock so
// results are reproducible.
//
// Revenue recognition:
//   - A booking's full charge total counts toward today when its check-in is
//     today OR any charge is dated today. One condition suffices; both being
//     true still adds the total once.
//   - Same rule against the YYYY-MM prefix for the monthly figure.
//   - Banquet bookings count on their event date, room service orders on the
//     date part of their order timestamp.
func ComputeSnapshot(in SnapshotInput, today string) models.DashboardSnapshot {
	currentMonth := utils.MonthOf(today)

	snapshot := models.DashboardSnapshot{
		Date:       today,
		Month:      currentMonth,
		TotalRooms: len(in.Rooms),
	}

	for _, room := range in.Rooms {
		switch room.Status {
		case models.RoomStatusOccupied:
			snapshot.OccupiedRooms++
		case models.RoomStatusDirty:
			snapshot.DirtyRooms++
		case models.RoomStatusClean:
			snapshot.CleanRooms++
		}
	}

	for _, booking := range in.Bookings {
		if booking.CheckIn == today {
			snapshot.TodayCheckIns++
		}
		if booking.CheckOut == today {
			snapshot.TodayCheckOuts++
		}

		totalCharges := booking.ChargeTotal()

		chargeToday := false
		chargeThisMonth := false
		for _, charge := range booking.Charges {
			if charge.Date == today {
				chargeToday = true
			}
			if utils.MonthOf(charge.Date) == currentMonth {
				chargeThisMonth = true
			}
		}

		if booking.CheckIn == today || chargeToday {
			snapshot.TodayRevenue += totalCharges
		}
		if utils.MonthOf(booking.CheckIn) == currentMonth || chargeThisMonth {
			snapshot.MonthRevenue += totalCharges
		}
	}

	for _, banquet := range in.BanquetBookings {
		if banquet.Date == today {
			snapshot.ActiveBanquets++
			snapshot.TodayRevenue += banquet.TotalAmount
		}
		if utils.MonthOf(banquet.Date) == currentMonth {
			snapshot.MonthRevenue += banquet.TotalAmount
		}
	}

	for _, table := range in.RestaurantTables {
		switch table.Status {
		case models.TableStatusAvailable:
			snapshot.AvailableTables++
		case models.TableStatusOccupied:
			snapshot.OccupiedTables++
		}
	}

	for _, order := range in.RoomServiceOrders {
		if models.IsOpenOrder(order.Status) {
			snapshot.PendingRoomService++
		}
		orderDate := utils.DatePart(order.OrderTime)
		if orderDate == today {
			snapshot.TodayRevenue += order.Total
		}
		if utils.MonthOf(orderDate) == currentMonth {
			snapshot.MonthRevenue += order.Total
		}
	}

	return snapshot
}

// OccupancyRate formats occupied/total as a percentage with one decimal.
// "0.0" when there are no rooms.
func OccupancyRate(occupied, total int) string {
	if total <= 0 {
		return "0.0"
	}
	return fmt.Sprintf("%.1f", float64(occupied)/float64(total)*100)
}

// DashboardService loads the store collections and runs the aggregation.
type DashboardService struct {
	DB *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{DB: db}
}

// Snapshot computes the dashboard summary for the given date, or for the
// current date when date is empty.
func (s *DashboardService) Snapshot(date string) (models.DashboardSnapshot, error) {
	if date == "" {
		date = utils.Today()
	}

	var in SnapshotInput
	if err := s.DB.Find(&in.Rooms).Error; err != nil {
		return models.DashboardSnapshot{}, fmt.Errorf("failed to load rooms: %w", err)
	}
	if err := s.DB.Preload("Charges").Find(&in.Bookings).Error; err != nil {
		return models.DashboardSnapshot{}, fmt.Errorf("failed to load bookings: %w", err)
	}
	if err := s.DB.Find(&in.BanquetBookings).Error; err != nil {
		return models.DashboardSnapshot{}, fmt.Errorf("failed to load banquet bookings: %w", err)
	}
	if err := s.DB.Find(&in.RestaurantTables).Error; err != nil {
		return models.DashboardSnapshot{}, fmt.Errorf("failed to load restaurant tables: %w", err)
	}
	if err := s.DB.Find(&in.RoomServiceOrders).Error; err != nil {
		return models.DashboardSnapshot{}, fmt.Errorf("failed to load room service orders: %w", err)
	}

	return ComputeSnapshot(in, date), nil
}
