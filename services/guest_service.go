package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/pavankkodange/HMAPP/models"
)

// GuestService manages guest profiles. Guests are created on registration
// and updated on each stay.
type GuestService struct {
	DB *gorm.DB
}

func NewGuestService(db *gorm.DB) *GuestService {
	return &GuestService{DB: db}
}

func (s *GuestService) Create(guest *models.Guest) error {
	guest.Name = strings.TrimSpace(guest.Name)
	if guest.Name == "" {
		return errors.New("guest name is required")
	}
	return s.DB.Create(guest).Error
}

func (s *GuestService) GetAll() ([]models.Guest, error) {
	var guests []models.Guest
	err := s.DB.Order("name").Find(&guests).Error
	return guests, err
}

func (s *GuestService) GetByID(id uint) (models.Guest, error) {
	var guest models.Guest
	err := s.DB.First(&guest, id).Error
	return guest, err
}

func (s *GuestService) Update(id uint, updateData map[string]interface{}) error {
	delete(updateData, "id")
	delete(updateData, "created_at")
	delete(updateData, "updated_at")
	delete(updateData, "deleted_at")
	return s.DB.Model(&models.Guest{}).Where("id = ?", id).Updates(updateData).Error
}

// RecordStay bumps the guest's cumulative stay count (called on checkout).
func (s *GuestService) RecordStay(id uint) error {
	return s.DB.Model(&models.Guest{}).Where("id = ?", id).
		UpdateColumn("total_stays", gorm.Expr("total_stays + 1")).Error
}
