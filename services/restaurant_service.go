package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/pavankkodange/HMAPP/models"
)

// RestaurantService covers restaurant tables and room service orders.
type RestaurantService struct {
	DB *gorm.DB
}

func NewRestaurantService(db *gorm.DB) *RestaurantService {
	return &RestaurantService{DB: db}
}

func (s *RestaurantService) CreateTable(table *models.RestaurantTable) error {
	table.Number = strings.TrimSpace(table.Number)
	if table.Number == "" {
		return errors.New("table number is required")
	}
	if table.Status == "" {
		table.Status = models.TableStatusAvailable
	}
	if !models.IsValidTableStatus(table.Status) {
		return errors.New("invalid table status")
	}
	return s.DB.Create(table).Error
}

func (s *RestaurantService) GetTables() ([]models.RestaurantTable, error) {
	var tables []models.RestaurantTable
	err := s.DB.Order("table_number").Find(&tables).Error
	return tables, err
}

func (s *RestaurantService) UpdateTableStatus(id uint, status string) error {
	if !models.IsValidTableStatus(status) {
		return errors.New("invalid table status")
	}
	result := s.DB.Model(&models.RestaurantTable{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *RestaurantService) DeleteTable(id uint) error {
	result := s.DB.Delete(&models.RestaurantTable{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CreateOrder records a room service order. OrderTime defaults to now in
// UTC; the dashboard only ever looks at its date part.
func (s *RestaurantService) CreateOrder(order *models.RoomServiceOrder) error {
	var room models.Room
	if err := s.DB.First(&room, order.RoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("room_not_found")
		}
		return err
	}
	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}
	if !models.IsValidOrderStatus(order.Status) {
		return errors.New("invalid order status")
	}
	if order.OrderTime == "" {
		order.OrderTime = time.Now().UTC().Format(time.RFC3339)
	}
	return s.DB.Create(order).Error
}

func (s *RestaurantService) GetOrders() ([]models.RoomServiceOrder, error) {
	var orders []models.RoomServiceOrder
	err := s.DB.Preload("Room").Order("order_time DESC").Find(&orders).Error
	return orders, err
}

func (s *RestaurantService) UpdateOrderStatus(id uint, status string) error {
	if !models.IsValidOrderStatus(status) {
		return errors.New("invalid order status")
	}
	result := s.DB.Model(&models.RoomServiceOrder{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
