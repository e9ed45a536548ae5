package services

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/pavankkodange/HMAPP/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
)

// UserService manages staff accounts and authentication.
type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// Authenticate verifies email + password against active accounts and stamps
// the last login on success. Inactive accounts cannot log in.
func (s *UserService) Authenticate(email, password string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	err := s.DB.Where("email = ? AND is_active = ?", email, true).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.DB.Model(&user).Update("last_login", now).Error; err != nil {
		return models.User{}, err
	}
	user.LastLogin = &now
	return user, nil
}

func (s *UserService) Create(user *models.User, password string) error {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	if user.Email == "" || password == "" {
		return errors.New("email and password required")
	}
	if !models.IsValidRole(user.Role) {
		return ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hash)
	user.IsActive = true
	return s.DB.Create(user).Error
}

func (s *UserService) GetAll() ([]models.User, error) {
	var users []models.User
	err := s.DB.Order("name").Find(&users).Error
	return users, err
}

func (s *UserService) Update(id uint, updateData map[string]interface{}) error {
	delete(updateData, "id")
	delete(updateData, "password")
	delete(updateData, "created_at")
	delete(updateData, "updated_at")
	delete(updateData, "deleted_at")

	if role, ok := updateData["role"].(string); ok && !models.IsValidRole(role) {
		return ErrInvalidRole
	}
	return s.DB.Model(&models.User{}).Where("id = ?", id).Updates(updateData).Error
}

// ToggleActive flips the account's active flag.
func (s *UserService) ToggleActive(id uint) error {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		return err
	}
	return s.DB.Model(&user).Update("is_active", !user.IsActive).Error
}

func (s *UserService) Delete(id uint) error {
	result := s.DB.Delete(&models.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
