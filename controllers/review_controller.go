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
	"github.com/vnkhanh/booking-server/utils"
)

type createReviewReq struct {
	ListingID uint   `json:"listing_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment"`
}

// POST /reviews
// Không yêu cầu đã từng booking listing này
func CreateReview(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.User)

	var req createReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "listingId and rating required"})
		return
	}

	review := models.Review{
		ListingID: req.ListingID,
		GuestID:   u.ID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	if err := config.DB.Create(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create review"})
		return
	}

	c.JSON(http.StatusCreated, review)
}

// GET /reviews/listing/:listingId — review của một listing, mới nhất trước
func GetReviewsByListing(c *gin.Context) {
	listingID, err := strconv.Atoi(c.Param("listingId"))
	if err != nil || listingID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID không hợp lệ"})
		return
	}

	var reviews []models.Review
	e := config.DB.
		Where("listing_id = ?", listingID).
		Preload("Guest", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name")
		}).
		Order("created_at DESC").
		Find(&reviews).Error
	if e != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get reviews"})
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// GET /reviews/me — review tôi đã viết, mới nhất trước
func GetMyReviews(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.User)

	var reviews []models.Review
	e := config.DB.
		Where("guest_id = ?", u.ID).
		Preload("Listing", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, title")
		}).
		Order("created_at DESC").
		Find(&reviews).Error
	if e != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get my reviews"})
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// GET /reviews/:id
func GetReviewByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID không hợp lệ"})
		return
	}

	var review models.Review
	e := config.DB.
		Preload("Listing", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, title")
		}).
		Preload("Guest", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name")
		}).
		First(&review, id).Error
	if errors.Is(e, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Review not found"})
		return
	}
	if e != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get review"})
		return
	}

	c.JSON(http.StatusOK, review)
}

type updateReviewReq struct {
	Rating  *int                 `json:"rating"`
	Comment utils.NullableString `json:"comment"`
}

// PATCH /reviews/:id — chỉ tác giả.
// Comment dùng tri-state: vắng mặt giữ nguyên, gửi "" hoặc null thì xóa rỗng.
func UpdateReview(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.User)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID không hợp lệ"})
		return
	}

	var review models.Review
	e := config.DB.First(&review, id).Error
	if errors.Is(e, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Review not found"})
		return
	}
	if e != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update review"})
		return
	}

	if review.GuestID != u.ID {
		c.JSON(http.StatusForbidden, gin.H{"message": "Not your review"})
		return
	}

	var req updateReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if req.Rating != nil && *req.Rating != 0 {
		review.Rating = *req.Rating
	}
	if req.Comment.Set {
		if req.Comment.Value != nil {
			review.Comment = *req.Comment.Value
		} else {
			review.Comment = ""
		}
	}

	if err := config.DB.Save(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update review"})
		return
	}

	c.JSON(http.StatusOK, review)
}

// DELETE /reviews/:id — chỉ tác giả, hard delete
func DeleteReview(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.User)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID không hợp lệ"})
		return
	}

	var review models.Review
	e := config.DB.First(&review, id).Error
	if errors.Is(e, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Review not found"})
		return
	}
	if e != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete review"})
		return
	}

	if review.GuestID != u.ID {
		c.JSON(http.StatusForbidden, gin.H{"message": "Not your review"})
		return
	}

	if err := config.DB.Delete(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete review"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}
