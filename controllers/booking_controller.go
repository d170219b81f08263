package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vnkhanh/booking-server/config"
	"github.com/vnkhanh/booking-server/middleware"
	"github.com/vnkhanh/booking-server/models"
	"github.com/vnkhanh/booking-server/utils"
)

type createBookingReq struct {
	ListingID  uint   `json:"listing_id" binding:"required"`
	CheckIn    string `json:"check_in" binding:"required"`
	CheckOut   string `json:"check_out" binding:"required"`
	GuestCount int    `json:"guest_count"` // nhận nhưng không đối chiếu max_guests
}

// POST /bookings
// Giá = price_per_night x số đêm, tối thiểu 1 đêm
func CreateBooking(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.User)

	var req createBookingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var listing models.Listing
	if err := config.DB.First(&listing, req.ListingID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Listing not found"})
		return
	}

	checkIn, err := time.Parse(utils.DateLayout, req.CheckIn)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "check_in không hợp lệ (YYYY-MM-DD)"})
		return
	}
	checkOut, err := time.Parse(utils.DateLayout, req.CheckOut)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "check_out không hợp lệ (YYYY-MM-DD)"})
		return
	}

	nights := utils.Nights(checkIn, checkOut)

	booking := models.Booking{
		ListingID:  req.ListingID,
		GuestID:    u.ID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		TotalPrice: listing.PricePerNight * nights,
		Status:     "REQUESTED",
	}

	if err := config.DB.Create(&booking).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create booking"})
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// GET /bookings/me — booking do tôi đặt (vai guest)
func GetMyBookings(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.User)

	var bookings []models.Booking
	err := config.DB.
		Where("guest_id = ?", u.ID).
		Preload("Listing").
		Find(&bookings).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get my bookings"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// GET /bookings/host/me — booking đổ về các listing tôi làm host
func GetHostBookings(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.User)

	var bookings []models.Booking
	err := config.DB.
		Joins("JOIN listings ON listings.id = bookings.listing_id").
		Where("listings.host_id = ?", u.ID).
		Preload("Listing").
		Find(&bookings).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get host bookings"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// GET /bookings/:id — guest/host đều xem được, không lọc ownership
func GetBookingByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID không hợp lệ"})
		return
	}

	var booking models.Booking
	e := config.DB.Preload("Listing").First(&booking, id).Error
	if errors.Is(e, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Booking not found"})
		return
	}
	if e != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get booking"})
		return
	}

	c.JSON(http.StatusOK, booking)
}

type updateBookingStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// PATCH /bookings/:id/status — chỉ host của listing được đổi trạng thái.
// Ghi đè không kiểm bảng chuyển trạng thái.
func UpdateBookingStatus(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.User)

	var req updateBookingStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID không hợp lệ"})
		return
	}

	var booking models.Booking
	e := config.DB.Preload("Listing").First(&booking, id).Error
	if errors.Is(e, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Booking not found"})
		return
	}
	if e != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update status"})
		return
	}

	if booking.Listing == nil || booking.Listing.HostID != u.ID {
		c.JSON(http.StatusForbidden, gin.H{"message": "Not host of this listing"})
		return
	}

	booking.Status = req.Status
	if err := config.DB.Save(&booking).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update status"})
		return
	}

	c.JSON(http.StatusOK, booking)
}

// DELETE /bookings/:id — guest hủy booking của mình, status = CANCELLED
func CancelBooking(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.User)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID không hợp lệ"})
		return
	}

	var booking models.Booking
	e := config.DB.First(&booking, id).Error
	if errors.Is(e, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Booking not found"})
		return
	}
	if e != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to cancel booking"})
		return
	}

	if booking.GuestID != u.ID {
		c.JSON(http.StatusForbidden, gin.H{"message": "Not your booking"})
		return
	}

	booking.Status = "CANCELLED"
	if err := config.DB.Save(&booking).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to cancel booking"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled"})
}
