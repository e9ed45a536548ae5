package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavankkodange/HMAPP/controllers"
	"github.com/pavankkodange/HMAPP/utils"
)

// Router with nil services: enough for exercising middleware and routing,
// since protected handlers are never reached without a token.
func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return SetupRouter(
		&controllers.AuthController{},
		&controllers.DashboardController{},
		&controllers.RoomController{},
		&controllers.GuestController{},
		&controllers.BookingController{},
		&controllers.BanquetController{},
		&controllers.RestaurantController{},
		&controllers.SettingsController{},
		&controllers.UserController{},
		&controllers.ReportController{},
	)
}

func TestHealthOpen(t *testing.T) {
	router := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMetricsOpen(t *testing.T) {
	router := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := testRouter()

	paths := []string{
		"/api/dashboard",
		"/api/rooms",
		"/api/bookings",
		"/api/settings/hotel",
		"/api/users",
	}
	for _, path := range paths {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestUserRoutesEnforceRole(t *testing.T) {
	router := testRouter()

	token, err := utils.GenerateToken(7, "lisa@harmonysuite.com", "housekeeping", time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
