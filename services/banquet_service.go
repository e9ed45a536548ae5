package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/pavankkodange/HMAPP/models"
	"github.com/pavankkodange/HMAPP/utils"
)

// BanquetService manages event halls and their single-day bookings.
type BanquetService struct {
	DB *gorm.DB
}

func NewBanquetService(db *gorm.DB) *BanquetService {
	return &BanquetService{DB: db}
}

func (s *BanquetService) CreateHall(hall *models.BanquetHall) error {
	hall.Name = strings.TrimSpace(hall.Name)
	if hall.Name == "" {
		return errors.New("hall name is required")
	}
	return s.DB.Create(hall).Error
}

func (s *BanquetService) GetHalls() ([]models.BanquetHall, error) {
	var halls []models.BanquetHall
	err := s.DB.Order("name").Find(&halls).Error
	return halls, err
}

func (s *BanquetService) UpdateHall(id uint, updateData map[string]interface{}) error {
	delete(updateData, "id")
	delete(updateData, "created_at")
	delete(updateData, "updated_at")
	delete(updateData, "deleted_at")
	return s.DB.Model(&models.BanquetHall{}).Where("id = ?", id).Updates(updateData).Error
}

func (s *BanquetService) DeleteHall(id uint) error {
	result := s.DB.Delete(&models.BanquetHall{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *BanquetService) CreateBooking(booking *models.BanquetBooking) error {
	if !utils.IsValidDate(booking.Date) {
		return errors.New("event date must be YYYY-MM-DD")
	}
	var hall models.BanquetHall
	if err := s.DB.First(&hall, booking.HallID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("hall_not_found")
		}
		return err
	}
	if booking.Status == "" {
		booking.Status = models.BanquetStatusConfirmed
	}
	return s.DB.Create(booking).Error
}

func (s *BanquetService) GetBookings() ([]models.BanquetBooking, error) {
	var bookings []models.BanquetBooking
	err := s.DB.Preload("Hall").Order("date DESC").Find(&bookings).Error
	return bookings, err
}

func (s *BanquetService) UpdateBookingStatus(id uint, status string) error {
	switch status {
	case models.BanquetStatusConfirmed, models.BanquetStatusCompleted, models.BanquetStatusCancelled:
	default:
		return errors.New("invalid banquet booking status")
	}
	result := s.DB.Model(&models.BanquetBooking{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
