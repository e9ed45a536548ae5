package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pavankkodange/HMAPP/controllers"
	"github.com/pavankkodange/HMAPP/middleware"
	"github.com/pavankkodange/HMAPP/models"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires controllers into the HTTP surface. Everything under
// /api except login requires a valid session token.
func SetupRouter(
	ac *controllers.AuthController,
	dc *controllers.DashboardController,
	rc *controllers.RoomController,
	gc *controllers.GuestController,
	bc *controllers.BookingController,
	bqc *controllers.BanquetController,
	resc *controllers.RestaurantController,
	sc *controllers.SettingsController,
	uc *controllers.UserController,
	repc *controllers.ReportController,
) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.Metrics())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/login", ac.Login)
	}

	protected := api.Group("")
	protected.Use(middleware.RequireAuth())
	{
		protected.GET("/dashboard", dc.GetDashboard)

		rooms := protected.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			rooms.POST("", rc.CreateRoom)
			rooms.PATCH("/:id", rc.UpdateRoom)
			rooms.PUT("/:id", rc.UpdateRoom)
			rooms.PATCH("/:id/status", rc.UpdateRoomStatus)
			rooms.DELETE("/:id", rc.DeleteRoom)
		}

		guests := protected.Group("/guests")
		{
			guests.GET("", gc.GetGuests)
			guests.GET("/:id", gc.GetGuestByID)
			guests.POST("", gc.CreateGuest)
			guests.PUT("/:id", gc.UpdateGuest)
		}

		bookings := protected.Group("/bookings")
		{
			bookings.GET("", bc.GetBookings)
			bookings.POST("", bc.CreateBooking)
			bookings.GET("/:id", bc.GetBookingDetails)
			bookings.PATCH("/:id/status", bc.UpdateBookingStatus)
			bookings.POST("/:id/charges", bc.AddCharge)
			bookings.POST("/:id/checkout", bc.CheckoutBooking)
			bookings.GET("/:id/bill", bc.GetBill)
			bookings.DELETE("/:id", bc.DeleteBooking)
		}

		banquet := protected.Group("/banquet")
		{
			banquet.GET("/halls", bqc.GetHalls)
			banquet.POST("/halls", bqc.CreateHall)
			banquet.PATCH("/halls/:id", bqc.UpdateHall)
			banquet.DELETE("/halls/:id", bqc.DeleteHall)
			banquet.GET("/bookings", bqc.GetBookings)
			banquet.POST("/bookings", bqc.CreateBooking)
			banquet.PATCH("/bookings/:id/status", bqc.UpdateBookingStatus)
		}

		restaurant := protected.Group("/restaurant")
		{
			restaurant.GET("/tables", resc.GetTables)
			restaurant.POST("/tables", resc.CreateTable)
			restaurant.PATCH("/tables/:id/status", resc.UpdateTableStatus)
			restaurant.DELETE("/tables/:id", resc.DeleteTable)
			restaurant.GET("/orders", resc.GetOrders)
			restaurant.POST("/orders", resc.CreateOrder)
			restaurant.PATCH("/orders/:id/status", resc.UpdateOrderStatus)
		}

		settings := protected.Group("/settings")
		{
			settings.GET("/hotel", sc.GetHotelSettings)
			settings.PUT("/hotel", sc.UpdateHotelSettings)
			settings.GET("/currencies", sc.GetCurrencies)
			settings.PUT("/currencies/rates", sc.UpdateRates)
			settings.GET("/currencies/preview", sc.PreviewCurrency)
		}

		users := protected.Group("/users")
		users.Use(middleware.RequireRole(models.RoleAdmin, models.RoleManager))
		{
			users.GET("", uc.GetUsers)
			users.POST("", uc.CreateUser)
			users.PUT("/:id", uc.UpdateUser)
			users.PATCH("/:id/toggle", uc.ToggleUserStatus)
			users.DELETE("/:id", uc.DeleteUser)
		}

		reports := protected.Group("/reports")
		{
			reports.GET("/bookings.xlsx", repc.ExportBookingsXLSX)
		}
	}

	return r
}
