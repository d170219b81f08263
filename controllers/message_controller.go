package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vnkhanh/booking-server/config"
	"github.com/vnkhanh/booking-server/middleware"
	"github.com/vnkhanh/booking-server/models"
)

type createMessageReq struct {
	BookingID uint   `json:"booking_id" binding:"required"`
	Content   string `json:"content" binding:"required,min=1"`
}

// POST /messages
// Người nhận suy ra từ booking: sender là guest thì gửi cho host và ngược lại.
// Người ngoài booking không gửi được.
func CreateMessage(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.User)

	var req createMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "bookingId and content required"})
		return
	}

	var booking models.Booking
	e := config.DB.Preload("Listing").First(&booking, req.BookingID).Error
	if errors.Is(e, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Booking not found"})
		return
	}
	if e != nil || booking.Listing == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create message"})
		return
	}

	var receiverID uint
	switch u.ID {
	case booking.GuestID:
		receiverID = booking.Listing.HostID
	case booking.Listing.HostID:
		receiverID = booking.GuestID
	default:
		c.JSON(http.StatusBadRequest, gin.H{"message": "Chỉ guest hoặc host của booking mới gửi được tin nhắn"})
		return
	}

	message := models.Message{
		BookingID:  req.BookingID,
		SenderID:   u.ID,
		ReceiverID: receiverID,
		Content:    req.Content,
	}

	if err := config.DB.Create(&message).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create message"})
		return
	}

	c.JSON(http.StatusCreated, message)
}

// GET /messages/me (và GET /messages) — mọi tin tôi gửi hoặc nhận, cũ nhất trước
func GetMyMessages(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.User)

	var messages []models.Message
	e := config.DB.
		Where("sender_id = ? OR receiver_id = ?", u.ID, u.ID).
		Order("created_at ASC").
		Find(&messages).Error
	if e != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get messages"})
		return
	}

	c.JSON(http.StatusOK, messages)
}

// GET /messages/booking/:id — thu hẹp về một booking, vẫn chỉ tin của chính mình
func GetMessagesForBooking(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.User)

	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil || bookingID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID không hợp lệ"})
		return
	}

	var messages []models.Message
	e := config.DB.
		Where("booking_id = ? AND (sender_id = ? OR receiver_id = ?)", bookingID, u.ID, u.ID).
		Order("created_at ASC").
		Find(&messages).Error
	if e != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get messages for booking"})
		return
	}

	c.JSON(http.StatusOK, messages)
}

// DELETE /messages/:id — chỉ người gửi xóa được
func DeleteMessage(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.User)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID không hợp lệ"})
		return
	}

	var message models.Message
	e := config.DB.First(&message, id).Error
	if errors.Is(e, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Message not found"})
		return
	}
	if e != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete message"})
		return
	}

	if message.SenderID != u.ID {
		c.JSON(http.StatusForbidden, gin.H{"message": "Chỉ xóa được tin nhắn mình đã gửi"})
		return
	}

	if err := config.DB.Delete(&message).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message deleted"})
}
