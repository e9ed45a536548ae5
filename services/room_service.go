package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/pavankkodange/HMAPP/models"
)

var ErrInvalidRoomStatus = errors.New("invalid room status")

// RoomService owns the room inventory and its housekeeping status.
type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) Create(room *models.Room) error {
	room.Number = strings.TrimSpace(room.Number)
	if room.Number == "" {
		return errors.New("room number is required")
	}
	if room.Status == "" {
		room.Status = models.RoomStatusClean
	}
	if !models.IsValidRoomStatus(room.Status) {
		return ErrInvalidRoomStatus
	}
	return s.DB.Create(room).Error
}

func (s *RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.Order("room_number").Find(&rooms).Error
	return rooms, err
}

func (s *RoomService) GetByID(id uint) (models.Room, error) {
	var room models.Room
	err := s.DB.First(&room, id).Error
	return room, err
}

func (s *RoomService) Update(id uint, updateData map[string]interface{}) error {
	delete(updateData, "id")
	delete(updateData, "created_at")
	delete(updateData, "updated_at")
	delete(updateData, "deleted_at")

	if status, ok := updateData["status"].(string); ok && !models.IsValidRoomStatus(status) {
		return ErrInvalidRoomStatus
	}
	return s.DB.Model(&models.Room{}).Where("id = ?", id).Updates(updateData).Error
}

// UpdateStatus re-statuses a room (housekeeping / front desk action).
func (s *RoomService) UpdateStatus(id uint, status string) error {
	if !models.IsValidRoomStatus(status) {
		return ErrInvalidRoomStatus
	}
	result := s.DB.Model(&models.Room{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("room %d not found", id)
	}
	return nil
}

func (s *RoomService) Delete(id uint) error {
	result := s.DB.Delete(&models.Room{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
