package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vnkhanh/booking-server/config"
	"github.com/vnkhanh/booking-server/middleware"
	"github.com/vnkhanh/booking-server/models"
	"github.com/vnkhanh/booking-server/routes"
	"github.com/vnkhanh/booking-server/utils"
)

// setupRouter dựng router thật trên SQLite in-memory, mỗi test một DB riêng
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "test-secret")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	config.DB = db

	// nới rate limit để test không dính 429
	middleware.AuthLimiter = middleware.NewIPRateLimiter(10000, 10000, time.Minute)

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeMap(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("failed to parse response %q: %v", w.Body.String(), err)
	}
	return m
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var l []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &l); err != nil {
		t.Fatalf("failed to parse response %q: %v", w.Body.String(), err)
	}
	return l
}

func createUser(t *testing.T, email, role string) (models.User, string) {
	t.Helper()

	hash, err := utils.HashPassword("password123")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	u := models.User{
		Email:        email,
		PasswordHash: hash,
		Name:         "Test User",
		Role:         role,
	}
	if err := config.DB.Create(&u).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	token, err := utils.GenerateToken(strconv.FormatUint(uint64(u.ID), 10), u.Role)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return u, token
}

func createListing(t *testing.T, hostID uint, price, maxGuests int, status string) models.Listing {
	t.Helper()

	l := models.Listing{
		HostID:        hostID,
		Title:         "Căn hộ view biển",
		Description:   "Hai phòng ngủ gần trung tâm",
		Address:       "Đà Nẵng",
		PricePerNight: price,
		MaxGuests:     maxGuests,
		Status:        status,
	}
	if err := config.DB.Create(&l).Error; err != nil {
		t.Fatalf("failed to create listing: %v", err)
	}
	return l
}

func createBooking(t *testing.T, listingID, guestID uint, totalPrice int, status string) models.Booking {
	t.Helper()

	checkIn, _ := time.Parse(utils.DateLayout, "2025-12-24")
	checkOut, _ := time.Parse(utils.DateLayout, "2025-12-26")
	b := models.Booking{
		ListingID:  listingID,
		GuestID:    guestID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		TotalPrice: totalPrice,
		Status:     status,
	}
	if err := config.DB.Create(&b).Error; err != nil {
		t.Fatalf("failed to create booking: %v", err)
	}
	return b
}

func wantStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("expected status %d, got %d (body: %s)", want, w.Code, w.Body.String())
	}
}
