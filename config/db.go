package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pavankkodange/HMAPP/models"
	"github.com/pavankkodange/HMAPP/utils"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "vervconnect_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := DB.AutoMigrate(
		&models.User{},
		&models.HotelSetting{},
		&models.Currency{},
		&models.Guest{},
		&models.Room{},
		&models.Booking{},
		&models.RoomCharge{},
		&models.BanquetHall{},
		&models.BanquetBooking{},
		&models.RestaurantTable{},
		&models.RoomServiceOrder{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}

// SeedDatabase fills empty tables with the defaults a fresh install needs:
// one staff account per role, the currency list and the settings row.
func SeedDatabase() {
	var userCount int64
	DB.Model(&models.User{}).Count(&userCount)
	if userCount == 0 {
		password := utils.EnvOrDefault("DEFAULT_STAFF_PASSWORD", "verv123")
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default staff password: %v", err)
		} else {
			staff := []models.User{
				{Name: "Sarah Johnson", Email: "sarah@harmonysuite.com", Role: models.RoleManager, Department: "Operations", Password: string(hash), IsActive: true},
				{Name: "Mike Chen", Email: "mike@harmonysuite.com", Role: models.RoleFrontDesk, Department: "Front Office", Password: string(hash), IsActive: true},
				{Name: "Lisa Rodriguez", Email: "lisa@harmonysuite.com", Role: models.RoleHousekeeping, Department: "Housekeeping", Password: string(hash), IsActive: true},
				{Name: "David Kim", Email: "david@harmonysuite.com", Role: models.RoleRestaurant, Department: "Food & Beverage", Password: string(hash), IsActive: true},
				{Name: "Alex Thompson", Email: "admin@harmonysuite.com", Role: models.RoleAdmin, Department: "Administration", Password: string(hash), IsActive: true},
			}
			if err := DB.Create(&staff).Error; err != nil {
				log.Printf("warning: failed to seed staff accounts: %v", err)
			} else {
				log.Println("Staff accounts seeded")
			}
		}
	}

	var currencyCount int64
	DB.Model(&models.Currency{}).Count(&currencyCount)
	if currencyCount == 0 {
		currencies := []models.Currency{
			{Code: "USD", Name: "US Dollar", Symbol: "$", Rate: 1},
			{Code: "EUR", Name: "Euro", Symbol: "€", Rate: 0.92},
			{Code: "GBP", Name: "British Pound", Symbol: "£", Rate: 0.79},
			{Code: "JPY", Name: "Japanese Yen", Symbol: "¥", Rate: 149.50},
			{Code: "INR", Name: "Indian Rupee", Symbol: "₹", Rate: 83.10},
			{Code: "AED", Name: "UAE Dirham", Symbol: "د.إ", Rate: 3.67},
		}
		if err := DB.Create(&currencies).Error; err != nil {
			log.Printf("warning: failed to seed currencies: %v", err)
		} else {
			log.Println("Currencies seeded")
		}
	}

	var settingsCount int64
	DB.Model(&models.HotelSetting{}).Count(&settingsCount)
	if settingsCount == 0 {
		settings := models.HotelSetting{
			Name:            "Harmony Suites",
			BaseCurrency:    "USD",
			DisplayCurrency: "USD",
			DecimalPlaces:   2,
			AutoConvert:     true,
		}
		if err := DB.Create(&settings).Error; err != nil {
			log.Printf("warning: failed to seed hotel settings: %v", err)
		} else {
			log.Println("Hotel settings seeded")
		}
	}
}
