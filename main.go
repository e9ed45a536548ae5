package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/pavankkodange/HMAPP/config"
	"github.com/pavankkodange/HMAPP/controllers"
	"github.com/pavankkodange/HMAPP/routes"
	"github.com/pavankkodange/HMAPP/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Println("⚠️  JWT_SECRET not set; using the development default")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied")

	// Initialize services
	roomService := services.NewRoomService(db)
	guestService := services.NewGuestService(db)
	bookingService := services.NewBookingService(db)
	banquetService := services.NewBanquetService(db)
	restaurantService := services.NewRestaurantService(db)
	currencyService := services.NewCurrencyService(db)
	userService := services.NewUserService(db)
	dashboardService := services.NewDashboardService(db)

	// Initialize controllers
	authController := controllers.NewAuthController(userService)
	dashboardController := controllers.NewDashboardController(dashboardService)
	roomController := controllers.NewRoomController(roomService)
	guestController := controllers.NewGuestController(guestService)
	bookingController := controllers.NewBookingController(bookingService, currencyService)
	banquetController := controllers.NewBanquetController(banquetService)
	restaurantController := controllers.NewRestaurantController(restaurantService)
	settingsController := controllers.NewSettingsController(currencyService)
	userController := controllers.NewUserController(userService)
	reportController := controllers.NewReportController(bookingService, dashboardService)

	router := routes.SetupRouter(
		authController,
		dashboardController,
		roomController,
		guestController,
		bookingController,
		banquetController,
		restaurantController,
		settingsController,
		userController,
		reportController,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
