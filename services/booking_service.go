package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pavankkodange/HMAPP/models"
	"github.com/pavankkodange/HMAPP/utils"
)

var (
	ErrBookingNotFound      = errors.New("booking_not_found")
	ErrInvalidBookingStatus = errors.New("invalid booking status")
	ErrInvalidStayDates     = errors.New("check-out must be after check-in")
)

// BookingService owns reservations and their folios.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// EstimateTotal is the creation-time bill estimate: nightly rate x nights.
// The folio (sum of charges) becomes authoritative once charges are posted.
func EstimateTotal(rate float64, checkIn, checkOut string) float64 {
	return rate * float64(utils.Nights(checkIn, checkOut))
}

func newReferenceCode() string {
	return "BK-" + strings.ToUpper(uuid.NewString()[:8])
}

// Create validates the stay window, estimates the total from the room rate
// and assigns a reference code.
func (s *BookingService) Create(booking *models.Booking) error {
	if !utils.IsValidDate(booking.CheckIn) || !utils.IsValidDate(booking.CheckOut) {
		return errors.New("check-in and check-out must be YYYY-MM-DD dates")
	}
	if utils.Nights(booking.CheckIn, booking.CheckOut) == 0 {
		return ErrInvalidStayDates
	}

	var room models.Room
	if err := s.DB.First(&room, booking.RoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("room %d not found", booking.RoomID)
		}
		return fmt.Errorf("failed to find room: %w", err)
	}
	var guest models.Guest
	if err := s.DB.First(&guest, booking.GuestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("guest %d not found", booking.GuestID)
		}
		return fmt.Errorf("failed to find guest: %w", err)
	}

	if booking.Status == "" {
		booking.Status = models.BookingStatusConfirmed
	}
	if booking.ReferenceCode == "" {
		booking.ReferenceCode = newReferenceCode()
	}
	if booking.TotalAmount == 0 {
		booking.TotalAmount = EstimateTotal(room.Rate, booking.CheckIn, booking.CheckOut)
	}
	return s.DB.Create(booking).Error
}

func (s *BookingService) GetAll() ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.DB.Preload("Guest").Preload("Room").Preload("Charges").
		Order("check_in DESC").Find(&bookings).Error
	return bookings, err
}

func (s *BookingService) GetByID(id uint) (models.Booking, error) {
	var booking models.Booking
	err := s.DB.Preload("Guest").Preload("Room").Preload("Charges").First(&booking, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return booking, ErrBookingNotFound
	}
	return booking, err
}

// UpdateStatus moves a booking through its lifecycle and applies the room
// side effects the front desk expects: a check-in occupies the room, a
// check-out leaves it dirty for housekeeping.
func (s *BookingService) UpdateStatus(id uint, status string) error {
	if !models.IsValidBookingStatus(status) {
		return ErrInvalidBookingStatus
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		if err := tx.Model(&booking).Update("status", status).Error; err != nil {
			return err
		}

		switch status {
		case models.BookingStatusCheckedIn:
			return tx.Model(&models.Room{}).Where("id = ?", booking.RoomID).
				Update("status", models.RoomStatusOccupied).Error
		case models.BookingStatusCheckedOut:
			return tx.Model(&models.Room{}).Where("id = ?", booking.RoomID).
				Update("status", models.RoomStatusDirty).Error
		}
		return nil
	})
}

// AddCharge posts a billable line to the booking's folio. An empty charge
// date defaults to today.
func (s *BookingService) AddCharge(bookingID uint, charge *models.RoomCharge) error {
	var booking models.Booking
	if err := s.DB.First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookingNotFound
		}
		return err
	}

	if charge.Amount <= 0 {
		return errors.New("charge amount must be positive")
	}
	if charge.Date == "" {
		charge.Date = utils.Today()
	} else if !utils.IsValidDate(charge.Date) {
		return errors.New("charge date must be YYYY-MM-DD")
	}
	if charge.Currency == "" {
		charge.Currency = booking.Currency
	}

	charge.BookingID = bookingID
	return s.DB.Create(charge).Error
}

// Checkout completes a stay: booking checked-out, room dirty, guest stay
// count incremented. Idempotence is not attempted; checking out twice fails.
func (s *BookingService) Checkout(id uint) (models.Booking, error) {
	var booking models.Booking

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Guest").Preload("Room").Preload("Charges").First(&booking, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}
		if strings.EqualFold(booking.Status, models.BookingStatusCheckedOut) {
			return errors.New("already_checked_out")
		}

		if err := tx.Model(&booking).Update("status", models.BookingStatusCheckedOut).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Room{}).Where("id = ?", booking.RoomID).
			Update("status", models.RoomStatusDirty).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Guest{}).Where("id = ?", booking.GuestID).
			UpdateColumn("total_stays", gorm.Expr("total_stays + 1")).Error; err != nil {
			return err
		}

		booking.Status = models.BookingStatusCheckedOut
		return nil
	})

	return booking, err
}

func (s *BookingService) Delete(id uint) error {
	result := s.DB.Delete(&models.Booking{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}
